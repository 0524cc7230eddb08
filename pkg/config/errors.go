package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables or the YAML file cannot be decoded into the config struct
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrReadingFile is returned when a config or .env file cannot be read
	ErrReadingFile = errors.New("failed to read config file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
