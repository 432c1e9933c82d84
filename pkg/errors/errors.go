// Package errors carries coded errors through the resolver, pipeline, store
// and HTTP layers.
//
// Every failure that reaches a user is an *Error with a [Code]. Codes group
// into a [Kind], which is what the CLI maps to exit status and the API maps
// to HTTP status:
//
//	err := errors.New(errors.ErrCodeInvalidComponent, "component %d: width must be >= 1", i)
//	errors.Is(err, errors.ErrCodeInvalidComponent) // true
//	errors.KindOf(err)                             // KindValidation
//
// Overlapping components are not an error. The resolver reports them as a
// flag on the render plan and drawing proceeds.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidComponent Code = "INVALID_COMPONENT"
	ErrCodeInvalidCatalog   Code = "INVALID_CATALOG"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidMode      Code = "INVALID_MODE"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeGridTooLarge     Code = "GRID_TOO_LARGE"

	ErrCodeEmptyComponentSet Code = "EMPTY_COMPONENT_SET"
	ErrCodeUnknownGateType   Code = "UNKNOWN_GATE_TYPE"

	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeOperatorNotFound Code = "OPERATOR_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by who is at fault.
type Kind uint8

const (
	KindInternal    Kind = iota // bug or environment failure
	KindValidation              // malformed request or file
	KindNotFound                // named resource is absent
	KindLayout                  // well-formed input the resolver cannot lay out
	KindUnsupported             // feature not available in this build
)

var kinds = map[Code]Kind{
	ErrCodeInvalidInput:      KindValidation,
	ErrCodeInvalidComponent:  KindValidation,
	ErrCodeInvalidCatalog:    KindValidation,
	ErrCodeInvalidFormat:     KindValidation,
	ErrCodeInvalidStyle:      KindValidation,
	ErrCodeInvalidMode:       KindValidation,
	ErrCodeInvalidColor:      KindValidation,
	ErrCodeGridTooLarge:      KindValidation,
	ErrCodeEmptyComponentSet: KindLayout,
	ErrCodeUnknownGateType:   KindLayout,
	ErrCodeNotFound:          KindNotFound,
	ErrCodeOperatorNotFound:  KindNotFound,
	ErrCodeFileNotFound:      KindNotFound,
	ErrCodeUnsupported:       KindUnsupported,
}

// Kind returns the group c belongs to. Unknown codes are internal.
func (c Code) Kind() Kind { return kinds[c] }

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindLayout:
		return "layout"
	case KindUnsupported:
		return "unsupported"
	}
	return "internal"
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e := find(err)
	return e != nil && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := find(err); e != nil {
		return e.Code
	}
	return ""
}

// KindOf classifies err. Errors without a code are internal.
func KindOf(err error) Kind { return GetCode(err).Kind() }

// UserMessage strips the code prefix from coded errors.
func UserMessage(err error) string {
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
