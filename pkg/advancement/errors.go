package advancement

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrDuplicateName = errors.New("duplicate criterion name")
	ErrInvalidKey    = errors.New("invalid advancement key")
	ErrInvalidName   = errors.New("invalid criterion name")
)

// Error is returned by Builder.Build and ParseKey.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key is the advancement the error belongs to, when known.
	Key string

	// Name is the offending criterion name (duplicate/invalid name errors).
	Name string
}

// ErrorCode categorizes advancement errors.
type ErrorCode string

const (
	// ErrCodeDuplicateName indicates two triggers share a criterion name.
	ErrCodeDuplicateName ErrorCode = "DUPLICATE_NAME"

	// ErrCodeInvalidKey indicates a malformed namespaced key.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"

	// ErrCodeInvalidName indicates an empty criterion name.
	ErrCodeInvalidName ErrorCode = "INVALID_NAME"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Name != "":
		return fmt.Sprintf("%s: %s (advancement=%s, criterion=%q)", e.Code, e.Message, e.Key, e.Name)
	case e.Key != "":
		return fmt.Sprintf("%s: %s (advancement=%s)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap maps the code to its sentinel so errors.Is works on wrapped errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeDuplicateName:
		return ErrDuplicateName
	case ErrCodeInvalidKey:
		return ErrInvalidKey
	case ErrCodeInvalidName:
		return ErrInvalidName
	}
	return nil
}

// IsDuplicateNameError reports whether err is a duplicate criterion name error.
func IsDuplicateNameError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCodeDuplicateName
	}
	return false
}

func newDuplicateNameError(key Key, name string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateName,
		Message: "criterion name used by more than one trigger",
		Key:     key.String(),
		Name:    name,
	}
}

func newInvalidKeyError(s, reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidKey,
		Message: fmt.Sprintf("%q: %s", s, reason),
	}
}
