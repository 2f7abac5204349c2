package repository

import "errors"

var (
	ErrInvalidMedicationData = errors.New("invalid medication data")
	ErrInvalidLogData        = errors.New("invalid notification log data")
)
