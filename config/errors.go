package config

import "errors"

var (
	// ErrReadConfig indicates the configuration file could not be read or
	// parsed.
	ErrReadConfig = errors.New("config: cannot read configuration")

	// ErrZeroAddress indicates a required address parameter is the zero
	// address.
	ErrZeroAddress = errors.New("config: address must not be zero")

	// ErrInvalidPrice indicates the unit price is not positive.
	ErrInvalidPrice = errors.New("config: price must be positive")

	// ErrZeroSupply indicates the total supply cap is zero.
	ErrZeroSupply = errors.New("config: total supply must be positive")

	// ErrInvalidMintBounds indicates min_mint and max_per_investor do not
	// satisfy 0 < min_mint <= max_per_investor <= total_supply.
	ErrInvalidMintBounds = errors.New("config: invalid mint bounds")

	// ErrNoStages indicates an empty distribution schedule.
	ErrNoStages = errors.New("config: distribution schedule must not be empty")

	// ErrScheduleMismatch indicates interval and percentage lists differ in
	// length.
	ErrScheduleMismatch = errors.New("config: intervals and percentages must match")

	// ErrInvalidSchedule indicates a non-increasing interval or non-positive
	// percentage.
	ErrInvalidSchedule = errors.New("config: invalid distribution schedule")
)
