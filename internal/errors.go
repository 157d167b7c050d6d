package internal

import "fmt"

// ConfigurationError reports a missing or invalid setting, such as an unknown display unit.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration: %s is not set", e.Field)
	}
	return fmt.Sprintf("invalid configuration: %s %q", e.Field, e.Value)
}

// InsufficientDataError is returned when a chart is asked to place fewer than two points.
type InsufficientDataError struct {
	Points int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least 2 points to lay out a chart, got %d", e.Points)
}
