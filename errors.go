package randx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgumentType is reported when an argument is not of the
	// numeric or integer category its parameter requires.
	ErrInvalidArgumentType = errors.New("invalid argument type")
	// ErrInvalidArgumentValue is reported when an argument is outside the
	// domain of its parameter.
	ErrInvalidArgumentValue = errors.New("invalid argument value")

	// ErrUnknownDistribution is returned by Lookup based helpers for names
	// that are not registered.
	ErrUnknownDistribution = errors.New("unknown distribution")
	// ErrArgumentCount is returned when a dynamic call passes the wrong
	// number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")
)

// ArgumentError describes the first argument that failed validation.
type ArgumentError struct {
	Kind   error // ErrInvalidArgumentType or ErrInvalidArgumentValue
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("randx: %v: %s %s", e.Kind, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func typeError(param, reason string) error {
	return &ArgumentError{Kind: ErrInvalidArgumentType, Param: param, Reason: reason}
}

func valueError(param, reason string) error {
	return &ArgumentError{Kind: ErrInvalidArgumentValue, Param: param, Reason: reason}
}
