package lookup

import "errors"

var (
	// ErrConfigFileNotFound is returned when the configuration document does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrUnsupportedKey is returned when the requested logical key is not recognised.
	ErrUnsupportedKey = errors.New("unsupported key")
)
