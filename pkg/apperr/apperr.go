// Package apperr carries the engine's error taxonomy. Repositories return
// these; controllers map them to HTTP status codes at the boundary and
// nothing below the boundary retries.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: a referenced game/at-bat/inning/pitcher row does not exist.
	KindNotFound
	// KindValidation: a required field is missing or outside its declared range.
	KindValidation
	// KindConflict: the operation is legal but the current state refuses it
	// (no open pitcher to close, at-bat already ended).
	KindConflict
	// KindStore: the store transaction aborted; surfaced unchanged.
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that the named resource does not exist.
func NotFound(resource string) error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Validation reports a missing or out-of-range field.
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a state that refuses the operation.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a transaction failure without rewording it.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStore, Message: "store failure: " + err.Error(), Err: err}
}

// KindOf extracts the taxonomy kind, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
