package repository

import "fmt"

// DataSourceError reports a dataset that exists but could not be read or
// parsed. A missing dataset is not an error; it loads as empty.
type DataSourceError struct {
	Dataset string
	Err     error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("failed to load dataset %s: %v", e.Dataset, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
