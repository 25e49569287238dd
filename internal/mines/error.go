package mines

import "errors"

var (
	ErrBadDimensions = errors.New("rows and cols must be positive")
	ErrBadMineCount  = errors.New("mine count must not be negative")
)
