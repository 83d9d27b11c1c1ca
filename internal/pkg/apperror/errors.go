// Package apperror holds the error taxonomy shared by every service.
package apperror

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// AuthorizationError means the caller is authenticated but not allowed
type AuthorizationError struct {
	Action string
	Msg    string
}

func (e AuthorizationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Action != "" {
		return fmt.Sprintf("not allowed to %s", e.Action)
	}
	return "forbidden"
}

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return "not found"
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	}
	return "conflict"
}

func (e ConflictError) Unwrap() error { return e.Err }

// CapacityExceededError reports a booking that cannot take another passenger
type CapacityExceededError struct {
	Current   int
	Requested int
	Capacity  int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d booked, %d requested, capacity %d", e.Current, e.Requested, e.Capacity)
}

// TokenErrorKind classifies a rejected approval credential
type TokenErrorKind string

const (
	TokenExpired TokenErrorKind = "expired"
	TokenInvalid TokenErrorKind = "invalid"
	TokenReused  TokenErrorKind = "reused"
)

type TokenError struct {
	Kind TokenErrorKind
	Err  error
}

func (e TokenError) Error() string {
	return fmt.Sprintf("approval token %s", e.Kind)
}

func (e TokenError) Unwrap() error { return e.Err }

// Outcome is the machine readable result shown to the link holder
func (e TokenError) Outcome() string {
	return "token_" + string(e.Kind)
}

// TransientError wraps a store or network failure that may succeed on retry
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: temporarily unavailable", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e TransientError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsCapacityExceeded(err error) bool {
	var target CapacityExceededError
	return errors.As(err, &target)
}

func IsToken(err error) bool {
	var target TokenError
	return errors.As(err, &target)
}

func IsTransient(err error) bool {
	var target TransientError
	return errors.As(err, &target)
}

// AsToken extracts a TokenError from err
func AsToken(err error) (TokenError, bool) {
	var target TokenError
	ok := errors.As(err, &target)
	return target, ok
}

// AsCapacity extracts a CapacityExceededError from err
func AsCapacity(err error) (CapacityExceededError, bool) {
	var target CapacityExceededError
	ok := errors.As(err, &target)
	return target, ok
}
