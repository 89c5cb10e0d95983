package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a document that is not valid TOML or a field with the wrong shape.
	ErrMalformed = errors.New("malformed manifest")
	// ErrMissingField reports a required field that is absent.
	ErrMissingField = errors.New("missing manifest field")
)

// Error describes a manifest interpretation failure.
// Kind is ErrMalformed or ErrMissingField.
type Error struct {
	Kind  error
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Is matches the error kind, so errors.Is(err, ErrMalformed) works.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func malformed(field string, err error) error {
	return &Error{Kind: ErrMalformed, Field: field, Err: err}
}

func missing(field string) error {
	return &Error{Kind: ErrMissingField, Field: field}
}
