package query

import (
	"encoding/json"
	"fmt"
)

// FormatDuration renders seconds as "1h 2m 5s", "1m 5s" or "5s" with floor
// division per unit.
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	hrs := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	if hrs > 0 {
		return fmt.Sprintf("%dh %dm %ds", hrs, mins, secs)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// ParseDependencies decodes the serialized operator-id list. Malformed or
// empty input yields an empty list, never an error.
func ParseDependencies(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var deps []string
	if err := json.Unmarshal([]byte(raw), &deps); err != nil {
		return []string{}
	}
	if deps == nil {
		return []string{}
	}
	return deps
}
