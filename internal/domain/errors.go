package domain

import "errors"

var (
	ErrUserIDRequired          = errors.New("user id is required")
	ErrInvalidWeekday          = errors.New("invalid weekday")
	ErrNotificationLogNotFound = errors.New("notification log not found")
)
