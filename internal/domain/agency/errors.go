package agency

import (
	"errors"
	"fmt"
)

// Taxonomía de fallos. Los handlers traducen cada uno a un status distinto.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrLocked        = errors.New("locked")
	ErrStillAssigned = errors.New("still assigned")

	// ErrInvalidBreed es también ErrInvalidInput.
	ErrInvalidBreed error = &Error{Kind: ErrInvalidInput, Msg: "invalid breed"}
)

// Error lleva el mensaje para el cliente y el sentinel (Kind) para errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(what string) error {
	return &Error{Kind: ErrNotFound, Msg: what + " not found"}
}

func invalid(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func locked(format string, args ...any) error {
	return &Error{Kind: ErrLocked, Msg: fmt.Sprintf(format, args...)}
}

func stillAssigned(msg string) error {
	return &Error{Kind: ErrStillAssigned, Msg: msg}
}
