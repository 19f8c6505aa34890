package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid role or password")
	ErrRoleNotConfigured  = errors.New("no credential configured for this role")
)
