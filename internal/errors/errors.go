// Package errors provides the error taxonomy shared by the trainer.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by how the program reacts to it.
type Kind string

const (
	// KindConfig covers missing or invalid settings, key or list files.
	KindConfig Kind = "CONFIG"
	// KindCommunication covers an unreachable lookup service or a non-success status.
	KindCommunication Kind = "COMMUNICATION"
	// KindStore covers failures of the word database.
	KindStore Kind = "STORE"
	// KindExhausted means no word with a usable pronunciation is left.
	KindExhausted Kind = "EXHAUSTED"
)

// Error is a classified error with an optional cause.
type Error struct {
	Kind    Kind
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

// ErrNoCandidates marks a word without a usable pronunciation. The session
// recovers from it by picking another word.
var ErrNoCandidates = &Error{Kind: KindExhausted, Message: "no usable pronunciation"}

// Config creates a configuration error.
func Config(message string, err error) *Error {
	return &Error{Kind: KindConfig, Message: message, Err: err}
}

// Communication creates a lookup-service error.
func Communication(message string, err error) *Error {
	return &Error{Kind: KindCommunication, Message: message, Err: err}
}

// Store creates a word-database error.
func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// Exhausted creates a data exhaustion error.
func Exhausted(message string, err error) *Error {
	return &Error{Kind: KindExhausted, Message: message, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain,
// or an empty Kind if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// ExitCode maps a terminal error to a process exit code.
// Quitting, by command, end of input or interrupt, returns no error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
