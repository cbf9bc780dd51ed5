package giltladder

import "fmt"

// InvalidInputError reports a portfolio parameter that is malformed or
// out of range. It is returned before any computation takes place.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// ConfigurationError reports a missing or inconsistent yield or tax
// parameter required by the calculation.
type ConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Parameter, e.Reason)
}

func misconfigured(parameter, reason string) error {
	return &ConfigurationError{Parameter: parameter, Reason: reason}
}
