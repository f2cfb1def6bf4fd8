package config

import "fmt"

// Validate checks that all deployment parameters are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func Validate(p Params) error {
	if p.Owner.IsZero() {
		return fmt.Errorf("%w: owner", ErrZeroAddress)
	}
	if p.Stablecoin.IsZero() {
		return fmt.Errorf("%w: stablecoin", ErrZeroAddress)
	}
	if p.Receiver.IsZero() {
		return fmt.Errorf("%w: receiver", ErrZeroAddress)
	}
	if p.Payer.IsZero() {
		return fmt.Errorf("%w: payer", ErrZeroAddress)
	}

	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.TotalSupply == 0 {
		return ErrZeroSupply
	}
	if p.MinMint == 0 || p.MinMint > p.MaxPerInvestor {
		return ErrInvalidMintBounds
	}
	if p.MaxPerInvestor > p.TotalSupply {
		return ErrInvalidMintBounds
	}

	if len(p.Intervals) == 0 {
		return ErrNoStages
	}
	if len(p.Intervals) != len(p.Percentages) {
		return fmt.Errorf("%w: %d intervals, %d percentages",
			ErrScheduleMismatch, len(p.Intervals), len(p.Percentages))
	}
	for i, d := range p.Intervals {
		if d == 0 {
			return fmt.Errorf("%w: interval %d is zero", ErrInvalidSchedule, i)
		}
		if i > 0 && d <= p.Intervals[i-1] {
			return fmt.Errorf("%w: interval %d (%d) not after interval %d (%d)",
				ErrInvalidSchedule, i, d, i-1, p.Intervals[i-1])
		}
	}
	for i, pct := range p.Percentages {
		if pct <= 0 {
			return fmt.Errorf("%w: percentage %d", ErrInvalidSchedule, i)
		}
	}
	return nil
}
