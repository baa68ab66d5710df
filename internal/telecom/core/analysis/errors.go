package analysis

import "errors"

var (
	ErrInvalidLag        = errors.New("lag must be at least 1")
	ErrInvalidLimit      = errors.New("limit must be positive")
	ErrTooFewProvinces   = errors.New("at least two provinces are required")
	ErrInvalidTarget     = errors.New("invalid target parameters")
	ErrUnknownTechnology = errors.New("unknown technology")
)
