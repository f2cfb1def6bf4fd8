package minah

import (
	"fmt"

	"github.com/minahlabs/libminah-go/host"
)

// BuyTokens moves the listed units from from to to against a stablecoin
// payment from to to from. The buyer (to) authorizes the call. Trading opens
// once the buying phase ends; both parties must be registered investors or
// the owner, and the contract must hold standing approval-for-all from the
// seller.
func (c *Contract) BuyTokens(from, to host.Address, tokenIDs []uint32) error {
	return c.trade("buy_tokens", to, from, to, tokenIDs, TopicTokensBought)
}

// SellTokens is the seller-initiated counterpart of BuyTokens: identical
// checks and effects, but the seller (from) authorizes the call.
func (c *Contract) SellTokens(from, to host.Address, tokenIDs []uint32) error {
	return c.trade("sell_tokens", from, from, to, tokenIDs, TopicTokensSold)
}

// trade performs the coupled payment + unit transfer for both marketplace
// directions. Checks precede every effect; the host journal reverts the
// whole call on failure.
func (c *Contract) trade(op string, initiator, from, to host.Address, tokenIDs []uint32, topic string) error {
	return c.env.Run(op, func() error {
		if err := c.env.RequireAuth(initiator); err != nil {
			return err
		}
		if len(tokenIDs) == 0 {
			return ErrNoTokenIDs
		}

		state, err := c.CurrentState()
		if err != nil {
			return err
		}
		if state == StageBuying {
			return ErrTransfersDisabled
		}

		fromEligible, err := c.isEligible(from)
		if err != nil {
			return err
		}
		if !fromEligible {
			return fmt.Errorf("%w: %s", ErrFromNotEligible, from.Hex())
		}
		toEligible, err := c.isEligible(to)
		if err != nil {
			return err
		}
		if !toEligible {
			return fmt.Errorf("%w: %s", ErrToNotEligible, to.Hex())
		}

		amount := uint32(len(tokenIDs))
		fromBalance, err := c.units.BalanceOf(from)
		if err != nil {
			return err
		}
		if fromBalance < amount {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientNFTBalance, fromBalance, amount)
		}

		stable, err := c.stablecoin()
		if err != nil {
			return err
		}
		price, err := c.Price()
		if err != nil {
			return err
		}
		totalPrice, err := mulInt64(int64(amount), price, tokenScale(stable))
		if err != nil {
			return err
		}

		toBalance, err := stable.Balance(to)
		if err != nil {
			return err
		}
		if toBalance < totalPrice {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientBalance, toBalance, totalPrice)
		}
		allowance, err := stable.Allowance(to, c.env.Contract())
		if err != nil {
			return err
		}
		if allowance < totalPrice {
			return fmt.Errorf("%w: %d < %d", ErrInsufficientAllowance, allowance, totalPrice)
		}

		if err := stable.TransferFrom(c.env.Contract(), to, from, totalPrice); err != nil {
			return err
		}
		if err := c.batchTransferFrom(from, to, tokenIDs); err != nil {
			return err
		}

		switch topic {
		case TopicTokensBought:
			c.emitTokensBought(from, to, amount)
		case TopicTokensSold:
			c.emitTokensSold(from, to, amount)
		}
		return nil
	})
}

// batchTransferFrom moves each listed unit from from to to. The contract
// acts as operator and must hold approval-for-all from the seller, granted
// out-of-band through SetApprovalForAll before any marketplace call.
func (c *Contract) batchTransferFrom(from, to host.Address, tokenIDs []uint32) error {
	approved, err := c.units.IsApprovedForAll(from, c.env.Contract())
	if err != nil {
		return err
	}
	if !approved {
		return fmt.Errorf("%w: %s", ErrSpenderNotApproved, from.Hex())
	}
	for _, id := range tokenIDs {
		if err := c.units.Update(from, to, id); err != nil {
			return err
		}
	}
	c.emitBatchTransfer(from, to, tokenIDs)
	return nil
}
