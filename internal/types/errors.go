package types

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindParse      ErrorKind = "parse"
	ErrorKindIO         ErrorKind = "io"
	ErrorKindValidation ErrorKind = "validation"
)

// Error is the failure type shared by the shortcut store and controller.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind) + " error"
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func ParseError(message string, err error) *Error {
	return &Error{Kind: ErrorKindParse, Message: message, Err: err}
}

func IOError(message string, err error) *Error {
	return &Error{Kind: ErrorKindIO, Message: message, Err: err}
}

func ValidationError(message string, err error) *Error {
	return &Error{Kind: ErrorKindValidation, Message: message, Err: err}
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.Kind == kind
}
