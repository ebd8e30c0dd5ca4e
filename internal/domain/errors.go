// Package domain contains the core business entities and value objects.
package domain

import (
	"errors"
)

// ErrorKind classifies failures surfaced by the generation pipeline.
type ErrorKind int

const (
	// KindUpstream covers failures raised by the vendor SDK or the network.
	KindUpstream ErrorKind = iota

	// KindConfiguration means required credentials are missing.
	KindConfiguration

	// KindGeneration means the vendor answered without usable content.
	KindGeneration
)

const unknownErrorMessage = "unknown error"

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindGeneration:
		return "generation"
	default:
		return "upstream"
	}
}

// Error carries a failure kind and its cause across layers.
type Error struct {
	Kind ErrorKind
	Op   string // Operation or message prefix
	Err  error  // Underlying error, may be nil
}

func (e *Error) Error() string {
	msg := unknownErrorMessage
	if e.Err != nil && e.Err.Error() != "" {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError returns a configuration error with the given message.
func NewConfigurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Err: errors.New(msg)}
}

// NewGenerationError returns a generation error with the given message.
func NewGenerationError(msg string) *Error {
	return &Error{Kind: KindGeneration, Err: errors.New(msg)}
}

// Wrap prefixes err with op while keeping the kind of the first typed error in its chain.
// Untyped causes are classified as upstream failures.
func Wrap(op string, err error) *Error {
	return &Error{Kind: KindOf(err), Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or KindUpstream.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return IsKind(err, KindConfiguration)
}

// IsGenerationError checks if an error is a generation error.
func IsGenerationError(err error) bool {
	return IsKind(err, KindGeneration)
}
