package minah

import (
	"github.com/minahlabs/libminah-go/ownable"
)

// StartChronometer closes the buying phase and starts the distribution
// countdown. Owner only, callable exactly once. Units left unsold under the
// supply cap are minted to the owner, so the supply counter always equals
// the cap from here on.
func (c *Contract) StartChronometer() error {
	return c.env.Run("start_chronometer", func() error {
		if err := ownable.RequireOwner(c.env); err != nil {
			return err
		}

		started, err := c.requiredBool(keyStarted)
		if err != nil {
			return err
		}
		beginDate, err := c.requiredUint64(keyBeginDate)
		if err != nil {
			return err
		}
		if started || beginDate != 0 {
			return ErrAlreadyStarted
		}

		if err := c.env.PutValue(keyBeginDate, c.env.Now()); err != nil {
			return err
		}
		if err := c.env.PutValue(keyStarted, true); err != nil {
			return err
		}
		if err := c.putState(StageBuying + 1); err != nil {
			return err
		}

		totalSupply, err := c.TotalSupply()
		if err != nil {
			return err
		}
		currentSupply, err := c.CurrentSupply()
		if err != nil {
			return err
		}
		remaining := totalSupply - currentSupply
		if err := c.env.PutValue(keyCurrentSupply, totalSupply); err != nil {
			return err
		}
		if remaining > 0 {
			owner, err := ownable.Owner(c.env)
			if err != nil {
				return err
			}
			if _, err := c.units.BatchMint(owner, remaining); err != nil {
				return err
			}
		}

		c.emitChronometerStarted()
		return nil
	})
}

// IsChronometerStarted reports whether the chronometer is running.
func (c *Contract) IsChronometerStarted() (bool, error) {
	return c.requiredBool(keyStarted)
}

// BeginDate returns the chronometer start timestamp, zero until started.
func (c *Contract) BeginDate() (uint64, error) {
	return c.requiredUint64(keyBeginDate)
}

// elapsed returns seconds since the chronometer started. Defined only once
// started; a ledger time before the begin date is a consistency failure.
func (c *Contract) elapsed() (uint64, error) {
	started, err := c.requiredBool(keyStarted)
	if err != nil {
		return 0, err
	}
	if !started {
		return 0, ErrNotStarted
	}
	beginDate, err := c.requiredUint64(keyBeginDate)
	if err != nil {
		return 0, err
	}
	now := c.env.Now()
	if now < beginDate {
		return 0, ErrInvalidLedgerTime
	}
	return now - beginDate, nil
}
