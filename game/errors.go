package game

import "fmt"

// ConfigurationError is returned when a board or game is constructed with
// settings no game could be played on.
type ConfigurationError struct {
	Field string
	Value int
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %d (must be positive)", err.Field, err.Value)
}
