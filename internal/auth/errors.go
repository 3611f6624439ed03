package auth

import "errors"

var (
	// ErrRegistration collapses every registration failure (duplicate user,
	// weak password, role attachment) into one cause-free signal. The real
	// reason is only logged.
	ErrRegistration = errors.New("user was not added")

	// ErrInvalidCredentials covers both unknown user and wrong password, so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("username or password incorrect")
)
