package scaffold

import (
	"errors"
	"fmt"
)

// Reasons for rejecting user input. Match them with errors.Is.
var (
	ErrEmptyInput          = errors.New("no table statement given")
	ErrTableNameNotFound   = errors.New("table name not found")
	ErrMissingUnderscore   = errors.New("table name missing underscore")
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

// InputError reports user-supplied text that does not have the expected shape.
// No file is written once an InputError is returned.
type InputError struct {
	Reason error  // one of the Err* sentinels
	Input  string // offending identifier, if any
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Reason
}

func inputError(reason error, input string) error {
	return &InputError{Reason: reason, Input: input}
}

// IsInputError reports whether err (or anything it wraps) is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
