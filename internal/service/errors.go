package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotOrganization    = errors.New("only organization accounts can perform this action")
	ErrInvalidSubmission  = errors.New("description, location and a positive point value are required")
	ErrProfileNotFound    = errors.New("profile not found")
)
