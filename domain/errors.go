package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeUnauthorized ErrCode = "unauthorized"
	CodeStore        ErrCode = "store_error"
)

// AppError is a classified failure surfaced to the transport layer.
type AppError struct {
	Code    ErrCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field" example:"range"`
	Message string `json:"message" example:"must be weekly, monthly, yearly or a YYYY-MM-DD date"`
}

// ValidationError is returned before any store access when input is malformed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", CodeValidation, strings.Join(parts, "; "))
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// StoreError wraps an underlying persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", CodeStore, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err, or returns nil when err is nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func hasCode(err error, code ErrCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool     { return hasCode(err, CodeNotFound) }
func IsUnauthorized(err error) bool { return hasCode(err, CodeUnauthorized) }

func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
