package synth

// jobProfile describes one synthetic workload class: its operator chain, the
// mean duration in seconds and how often it fails.
type jobProfile struct {
	operators   []string
	avgDuration float64
	failureRate float64
}

var jobProfiles = map[string]jobProfile{
	"ETL_Pipeline": {
		operators:   []string{"ReadCSV", "Filter", "Join", "Transform", "WriteParquet"},
		avgDuration: 300,
		failureRate: 0.05,
	},
	"ML_Training": {
		operators:   []string{"ReadParquet", "FeatureEngineering", "MLTransform", "ModelTrain", "ModelSave"},
		avgDuration: 1800,
		failureRate: 0.10,
	},
	"Analytics_Query": {
		operators:   []string{"ReadParquet", "Filter", "GroupBy", "Aggregate", "Sort"},
		avgDuration: 120,
		failureRate: 0.02,
	},
	"Data_Migration": {
		operators:   []string{"ReadDatabase", "Transform", "Validate", "WriteDatabase"},
		avgDuration: 900,
		failureRate: 0.08,
	},
	"Report_Generation": {
		operators:   []string{"ReadMultiple", "Join", "Aggregate", "Format", "WriteCSV"},
		avgDuration: 180,
		failureRate: 0.03,
	},
}

// operatorWeights is each operator's share of the job duration; unlisted
// operators get defaultOperatorWeight.
var operatorWeights = map[string]float64{
	"ReadCSV": 0.15, "ReadParquet": 0.10, "ReadDatabase": 0.20, "ReadMultiple": 0.18,
	"Filter": 0.05, "Transform": 0.15, "FeatureEngineering": 0.25,
	"Join": 0.20, "GroupBy": 0.15, "Aggregate": 0.10,
	"MLTransform": 0.30, "ModelTrain": 0.40, "ModelSave": 0.05,
	"Sort": 0.12, "Validate": 0.08, "Format": 0.06,
	"WriteParquet": 0.12, "WriteCSV": 0.08, "WriteDatabase": 0.18,
}

const defaultOperatorWeight = 0.10

var errorMessages = []string{
	"OutOfMemoryError: Java heap space",
	"FileNotFoundException: Input path does not exist",
	"AnalysisException: Column 'user_id' cannot be resolved",
	"SparkException: Task failed while writing rows",
	"TimeoutException: Futures timed out after [300 seconds]",
	"IllegalArgumentException: Invalid partition column",
	"IOException: Failed to write to output path",
	"ParseException: Failed to parse CSV file",
}

var stackTraces = []string{
	`java.lang.OutOfMemoryError: Java heap space
    at java.util.Arrays.copyOf(Arrays.java:3332)
    at org.apache.spark.sql.catalyst.expressions.UnsafeRow.copy(UnsafeRow.scala:600)
    at org.apache.spark.sql.execution.aggregate.HashAggregateExec.doExecute(HashAggregateExec.scala:156)`,

	`org.apache.spark.SparkException: Task failed while writing rows
    at org.apache.spark.sql.execution.datasources.FileFormatWriter$.write(FileFormatWriter.scala:200)
    at org.apache.spark.sql.execution.datasources.InsertIntoHadoopFsRelationCommand.run(InsertIntoHadoopFsRelationCommand.scala:159)`,

	`java.io.FileNotFoundException: File does not exist: /path/to/input.csv
    at org.apache.hadoop.fs.RawLocalFileSystem.deprecatedGetFileStatus(RawLocalFileSystem.java:611)
    at org.apache.spark.sql.execution.datasources.csv.CSVFileFormat.readFile(CSVFileFormat.scala:89)`,
}
