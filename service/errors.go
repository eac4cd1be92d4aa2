package service

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("not the owner")
	ErrNoteTooShort       = errors.New("note is too short")
	ErrNoteTooLong        = errors.New("note is too long")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
