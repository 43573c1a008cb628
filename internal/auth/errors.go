package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid bearer token")
	ErrExpiredToken       = errors.New("expired bearer token")
)
