package minah

import (
	"fmt"
	"math"

	"github.com/minahlabs/libminah-go/ownable"
)

// CalculateAmountToRelease returns the total stablecoin base units a
// distribution at the given ROI percentage would pay out: the sum over every
// registered investor of that investor's floored pro-rata share. percent
// carries the config.PercentScale fixed-point scaling, which doubles as the
// token-decimal scale, so the result is in base units directly.
//
// Read-only and idempotent; call it before a release to know how much the
// payer must approve. percent must be non-negative and small enough that no
// investor's product overflows int64; out-of-range values fail
// ErrAmountOverflow.
func (c *Contract) CalculateAmountToRelease(percent int64) (int64, error) {
	price, err := c.Price()
	if err != nil {
		return 0, err
	}
	investors, err := c.investors()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, investor := range investors {
		balance, err := c.units.BalanceOf(investor)
		if err != nil {
			return 0, err
		}
		share, err := investorShare(balance, price, percent)
		if err != nil {
			return 0, err
		}
		total += share
	}
	return total, nil
}

// investorShare computes one investor's payout. Multiply before divide:
// flooring happens once, on the investor's full product, so no per-factor
// truncation loss accumulates.
func investorShare(balance uint32, price, percent int64) (int64, error) {
	product, err := mulInt64(int64(balance), price, percent)
	if err != nil {
		return 0, err
	}
	return product / 100, nil
}

// mulInt64 multiplies non-negative factors, failing on int64 overflow.
func mulInt64(factors ...int64) (int64, error) {
	result := int64(1)
	for _, f := range factors {
		if f < 0 {
			return 0, fmt.Errorf("%w: negative factor %d", ErrAmountOverflow, f)
		}
		if f != 0 && result > math.MaxInt64/f {
			return 0, ErrAmountOverflow
		}
		result *= f
	}
	return result, nil
}

// AmountToReleaseForCurrentStage returns the release amount persisted by the
// most recent distribution. Auditability only; not used for control flow.
func (c *Contract) AmountToReleaseForCurrentStage() (int64, error) {
	return c.requiredInt64(keyStageRelease)
}

// ReleaseDistribution advances the stage machine. Owner only. Every stage
// whose boundary has elapsed is distributed in order, one ROI percentage per
// stage; after the final configured stage the contract is Ended. A call that
// distributes nothing fails with ErrDistributionNotReady and changes no
// state.
func (c *Contract) ReleaseDistribution() error {
	return c.env.Run("release_distribution", func() error {
		if err := ownable.RequireOwner(c.env); err != nil {
			return err
		}

		elapsed, err := c.elapsed()
		if err != nil {
			return err
		}
		intervals, err := c.intervals()
		if err != nil {
			return err
		}
		percentages, err := c.percentages()
		if err != nil {
			return err
		}
		state, err := c.CurrentState()
		if err != nil {
			return err
		}

		distributed := false
		for {
			idx := state.distributionIndex()
			if idx < 0 || idx >= len(intervals) || elapsed < intervals[idx] {
				break
			}
			if err := c.distribute(percentages[idx]); err != nil {
				return err
			}
			state++
			if err := c.putState(state); err != nil {
				return err
			}
			distributed = true
		}
		if !distributed {
			return ErrDistributionNotReady
		}
		return nil
	})
}

// distribute pays one stage's ROI to every registered investor, in
// enumeration order, from the payer's stablecoin balance. Zero-balance
// investors are visited and receive exactly zero. The released total must
// match the precomputed release amount; a mismatch aborts the whole call.
func (c *Contract) distribute(percent int64) error {
	state, err := c.CurrentState()
	if err != nil {
		return err
	}
	intervals, err := c.intervals()
	if err != nil {
		return err
	}
	if state.Ended(len(intervals)) {
		return ErrDistributionEnded
	}

	amountToRelease, err := c.CalculateAmountToRelease(percent)
	if err != nil {
		return err
	}
	if err := c.env.PutValue(keyStageRelease, amountToRelease); err != nil {
		return err
	}

	stable, err := c.stablecoin()
	if err != nil {
		return err
	}
	payer, err := c.Payer()
	if err != nil {
		return err
	}
	price, err := c.Price()
	if err != nil {
		return err
	}
	investors, err := c.investors()
	if err != nil {
		return err
	}

	contract := c.env.Contract()
	var released int64
	for _, investor := range investors {
		balance, err := c.units.BalanceOf(investor)
		if err != nil {
			return err
		}
		share, err := investorShare(balance, price, percent)
		if err != nil {
			return err
		}

		claimed, err := c.ClaimedAmount(investor)
		if err != nil {
			return err
		}
		if err := c.env.PutValue(claimedKey(investor), claimed+share); err != nil {
			return err
		}
		released += share

		if err := stable.TransferFrom(contract, payer, investor, share); err != nil {
			return err
		}
	}

	if released != amountToRelease {
		return fmt.Errorf("%w: released %d, expected %d", ErrAmountMismatch, released, amountToRelease)
	}
	return nil
}
