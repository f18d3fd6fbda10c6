package util

import "fmt"

// ArgError represents an error of command line arguments usage.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e *ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// NameError represents a rejected project name.
type NameError struct {
	// Name is the rejected project name.
	Name string
	// Reason describes why the name was rejected.
	Reason string
}

// Error returns error message.
func (e *NameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}

// ExistsError represents a destination path collision.
type ExistsError struct {
	// Path is the already existing filesystem path.
	Path string
}

// Error returns error message.
func (e *ExistsError) Error() string {
	return fmt.Sprintf("%q already exists", e.Path)
}
