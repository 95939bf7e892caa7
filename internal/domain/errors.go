package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid request input")
	ErrRequestNotFound   = errors.New("exchange request not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDeliveryFailed    = errors.New("notification delivery failed")
	ErrUserNotFound      = errors.New("user not found")
	ErrDraftNotFound     = errors.New("draft not found")
)
