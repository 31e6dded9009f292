package account

import "errors"

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ToHTTPStatus maps account errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return 409
	case errors.Is(err, ErrAccountNotFound):
		return 404
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	default:
		return 500
	}
}
