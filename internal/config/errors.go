package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownPreset is returned when the selected preset does not exist
	ErrUnknownPreset = errors.New("unknown preset")
)
