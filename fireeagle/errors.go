package fireeagle

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	// ErrConfig indicates invalid client configuration.
	ErrConfig = errors.New("invalid fire eagle configuration")

	// ErrTransport indicates a network-level failure or a non-2xx HTTP status.
	ErrTransport = errors.New("fire eagle transport failure")

	// ErrParse indicates the response body could not be parsed as XML.
	ErrParse = errors.New("fire eagle response parse failure")

	// ErrAPI indicates a well-formed response that explicitly reports an error.
	ErrAPI = errors.New("fire eagle API returned an error")
)

// Kind classifies a failure by its source.
type Kind int

const (
	KindConfig Kind = iota
	KindTransport
	KindParse
	KindAPI
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by all client operations.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "query_location"
	Message string
	Err     error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("fireeagle %s: %s: %s", e.Op, e.Kind, msg)
	}
	return fmt.Sprintf("fireeagle: %s: %s", e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps the error kind onto the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfig:
		return e.Kind == KindConfig
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrParse:
		return e.Kind == KindParse
	case ErrAPI:
		return e.Kind == KindAPI
	}
	return false
}
