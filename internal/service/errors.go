package service

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateRegistration = errors.New("a vehicle with this registration number already exists")
	ErrDuplicateUsername     = errors.New("this username already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrOldPasswordMismatch   = errors.New("old password is incorrect")
)
