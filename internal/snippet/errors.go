package snippet

import (
	"errors"
	"fmt"
)

// ExitFailure is the process exit status for any generator error.
const ExitFailure = 1

// ErrorKind classifies generator failures.
type ErrorKind int

const (
	// ConfigurationError covers a missing input directory, an empty input
	// directory, an unmapped source file and a bad project config.
	ConfigurationError ErrorKind = iota + 1
	// ParseError means a source file is not valid JSON.
	ParseError
	// ValidationError means the JSON is well formed but has the wrong shape,
	// or two snippets collide on the same global key.
	ValidationError
	// StaleOutputError is reported by Check when the output on disk differs
	// from what Generate would write.
	StaleOutputError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "ConfigurationError"
	case ParseError:
		return "ParseError"
	case ValidationError:
		return "ValidationError"
	case StaleOutputError:
		return "StaleOutputError"
	default:
		return "UnknownError"
	}
}

// Error is returned for every generator failure. Message is the one-line
// text shown to the user, followed by the cause when there is one. File,
// Snippet and Key identify the offending input when known.
type Error struct {
	Kind    ErrorKind
	File    string
	Snippet string
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, a generator *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func configErrorf(format string, args ...any) *Error {
	return &Error{Kind: ConfigurationError, Message: fmt.Sprintf(format, args...)}
}

func snippetError(file, name, format string, args ...any) *Error {
	return &Error{
		Kind:    ValidationError,
		File:    file,
		Snippet: name,
		Message: fmt.Sprintf(format, args...),
	}
}
