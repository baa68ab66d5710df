package domain

import "errors"

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrTableNotLoaded  = errors.New("table not loaded")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownProvince = errors.New("unknown province")
	ErrInvalidQuarter  = errors.New("invalid quarter")
	ErrDuplicateRecord = errors.New("duplicate record for province and period")

	// no data for a requested window
	ErrEmptyRange       = errors.New("empty period range")
	ErrEmptyPeriod      = errors.New("no observations in period")
	ErrInsufficientData = errors.New("insufficient data")
)
