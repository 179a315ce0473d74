package util

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrBadPassphrase = errors.New("wrong passphrase")
	ErrInvalidDate   = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidMonth  = errors.New("invalid month, want YYYY-MM")
	ErrNotWeekStart  = errors.New("week start must be a Monday")
	ErrFutureDate    = errors.New("cannot log a future date")
)
