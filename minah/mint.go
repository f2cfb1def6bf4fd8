package minah

import (
	"fmt"

	"github.com/minahlabs/libminah-go/host"
)

// Mint sells amount new units to investor during the buying phase. The
// investor must authorize, be registered, respect the minimum batch, the
// supply cap, and the per-investor cap, and must hold and have approved
// price * amount in stablecoin to the contract. Payment goes to the
// configured receiver; units are minted with consecutive ids.
func (c *Contract) Mint(investor host.Address, amount uint32) error {
	return c.env.Run("mint", func() error {
		if err := c.env.RequireAuth(investor); err != nil {
			return err
		}

		minMint, err := c.requiredUint32(keyMinMint)
		if err != nil {
			return err
		}
		if amount < minMint {
			return fmt.Errorf("%w: %d < %d", ErrBelowMinimumMint, amount, minMint)
		}

		state, err := c.CurrentState()
		if err != nil {
			return err
		}
		if state != StageBuying {
			return ErrNotInBuyingPhase
		}

		isInvestor, err := c.IsInvestor(investor)
		if err != nil {
			return err
		}
		if !isInvestor {
			return ErrNotInvestor
		}

		totalSupply, err := c.TotalSupply()
		if err != nil {
			return err
		}
		currentSupply, err := c.CurrentSupply()
		if err != nil {
			return err
		}
		// Subtraction form so a huge amount cannot wrap the comparison.
		if amount > totalSupply || currentSupply > totalSupply-amount {
			return fmt.Errorf("%w: %d + %d > %d", ErrSupplyExceeded, currentSupply, amount, totalSupply)
		}
		newSupply := currentSupply + amount

		maxPerInvestor, err := c.requiredUint32(keyMaxInvestor)
		if err != nil {
			return err
		}
		balance, err := c.units.BalanceOf(investor)
		if err != nil {
			return err
		}
		if amount > maxPerInvestor || balance > maxPerInvestor-amount {
			return fmt.Errorf("%w: %d + %d > %d", ErrInvestorCapExceeded, balance, amount, maxPerInvestor)
		}

		stable, err := c.stablecoin()
		if err != nil {
			return err
		}
		price, err := c.Price()
		if err != nil {
			return err
		}
		cost, err := mulInt64(price, int64(amount), tokenScale(stable))
		if err != nil {
			return err
		}

		tokenBalance, err := stable.Balance(investor)
		if err != nil {
			return err
		}
		if tokenBalance < cost {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientBalance, tokenBalance, cost)
		}
		allowance, err := stable.Allowance(investor, c.env.Contract())
		if err != nil {
			return err
		}
		if allowance < cost {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientAllowance, allowance, cost)
		}

		receiver, err := c.Receiver()
		if err != nil {
			return err
		}
		if err := stable.TransferFrom(c.env.Contract(), investor, receiver, cost); err != nil {
			return err
		}
		if err := c.env.PutValue(keyCurrentSupply, newSupply); err != nil {
			return err
		}
		_, err = c.units.BatchMint(investor, amount)
		return err
	})
}
