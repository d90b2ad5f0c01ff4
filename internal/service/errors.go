package service

import "errors"

var (
	// ErrInvalidFilter reports a task filter kind outside all/today/completed.
	ErrInvalidFilter = errors.New("invalid task filter")
	// ErrEmailTaken reports a registration attempt with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials reports a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
