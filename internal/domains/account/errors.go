package account

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
