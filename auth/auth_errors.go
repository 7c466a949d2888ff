package auth

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrInvalidSession = errors.New("invalid or expired session")

var ErrValidation = errors.New("missing or invalid credentials")
