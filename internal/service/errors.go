package service

import "errors"

// MinPasswordLength is the documented minimum for new passwords.
const MinPasswordLength = 6

var (
	// ErrDuplicateEmail is returned when signup hits an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned when an operation that needs a session
	// identity is called without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidEmail     = errors.New("email is not valid")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrFirstNameMissing = errors.New("first name is required")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")

	ErrUserNotFound = errors.New("user not found")
)

// IsValidationError reports whether err is one of the signup/profile input
// errors, as opposed to a conflict or a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrFirstNameMissing)
}
