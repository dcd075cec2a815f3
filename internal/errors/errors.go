package errors

import (
	"errors"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrTokenRevoked    = errors.New("token revoked")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenMalformed  = errors.New("token malformed")
)
