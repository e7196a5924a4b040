package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyMessage       = errors.New("message content is empty")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
)
