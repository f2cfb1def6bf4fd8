package minah

import (
	"github.com/minahlabs/libminah-go/host"
	"github.com/minahlabs/libminah-go/ownable"
)

// RegisterInvestor registers a new investor address. Owner only. The entry
// is permanent: the flag, the enumeration slot, and the claimed-amount
// accumulator are never removed, even if the investor later holds no units.
func (c *Contract) RegisterInvestor(investor host.Address) error {
	return c.env.Run("register_investor", func() error {
		if err := ownable.RequireOwner(c.env); err != nil {
			return err
		}
		if investor.IsZero() {
			return host.ErrInvalidAddress
		}

		isInvestor, err := c.IsInvestor(investor)
		if err != nil {
			return err
		}
		if isInvestor {
			return ErrAlreadyInvestor
		}

		if err := c.env.PutValue(investorKey(investor), true); err != nil {
			return err
		}
		investors, err := c.investors()
		if err != nil {
			return err
		}
		investors = append(investors, investor)
		if err := c.env.PutValue(keyInvestors, investors); err != nil {
			return err
		}
		if err := c.env.PutValue(claimedKey(investor), int64(0)); err != nil {
			return err
		}

		c.emitInvestorCreated(investor)
		return nil
	})
}

// IsInvestor reports whether addr is registered. Never fails on unknown
// addresses.
func (c *Contract) IsInvestor(addr host.Address) (bool, error) {
	var flag bool
	if _, err := c.env.GetValue(investorKey(addr), &flag); err != nil {
		return false, err
	}
	return flag, nil
}

// InvestorCount returns the number of registered investors.
func (c *Contract) InvestorCount() (uint32, error) {
	investors, err := c.investors()
	if err != nil {
		return 0, err
	}
	return uint32(len(investors)), nil
}

// ClaimedAmount returns the total stablecoin base units distributed to
// investor so far. Zero for unknown addresses.
func (c *Contract) ClaimedAmount(investor host.Address) (int64, error) {
	var claimed int64
	if _, err := c.env.GetValue(claimedKey(investor), &claimed); err != nil {
		return 0, err
	}
	return claimed, nil
}

// investors returns the append-only enumeration list, in insertion order.
func (c *Contract) investors() ([]host.Address, error) {
	var investors []host.Address
	ok, err := c.env.GetValue(keyInvestors, &investors)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateNotSet
	}
	return investors, nil
}

// isEligible reports whether addr may take part in marketplace trades: a
// registered investor or the contract owner.
func (c *Contract) isEligible(addr host.Address) (bool, error) {
	isInvestor, err := c.IsInvestor(addr)
	if err != nil {
		return false, err
	}
	if isInvestor {
		return true, nil
	}
	owner, err := ownable.Owner(c.env)
	if err != nil {
		return false, err
	}
	return addr == owner, nil
}
