package model

import (
	"errors"

	"go-taskflow/pkg/msg"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// DomainError carries a catalogue message and the kind used to pick the response status
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NotFound builds an ErrNotFound error from a message key
func NotFound(key string, args ...any) error {
	return &DomainError{Kind: ErrNotFound, Message: msg.GetMessage(key, args...)}
}

// Invalid builds an ErrValidation error from a message key
func Invalid(key string, args ...any) error {
	return &DomainError{Kind: ErrValidation, Message: msg.GetMessage(key, args...)}
}
