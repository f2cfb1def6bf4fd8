// Package minah implements the Minah tokenized real-estate investment
// contract: owner-gated investor registration, a capped primary sale of NFT
// units paid in stablecoin, a chronometer that closes the buying phase and
// drives time-gated ROI distribution stages, pro-rata payout accounting, and
// a secondary marketplace restricted to registered participants.
//
// The contract runs against a host.Ledger; every public operation is one
// atomic invocation. Checks always precede effects, and any failure reverts
// the whole call.
package minah

import (
	"github.com/minahlabs/libminah-go/config"
	"github.com/minahlabs/libminah-go/host"
	"github.com/minahlabs/libminah-go/nft"
	"github.com/minahlabs/libminah-go/ownable"
	"github.com/minahlabs/libminah-go/token"
)

// Metadata of the NFT collection.
const (
	collectionName   = "Minah"
	collectionSymbol = "MNH"
)

// Contract is one deployed Minah instance.
type Contract struct {
	env    *host.Env
	units  *nft.Ledger
	tokens token.Resolver
}

// Deploy initializes a new Minah contract in env's keyspace with the given
// parameters. The owner must authorize the deployment. Construction happens
// exactly once; parameters other than the stablecoin, receiver, and payer
// addresses are immutable afterwards.
func Deploy(env *host.Env, tokens token.Resolver, p config.Params) (*Contract, error) {
	c := Open(env, tokens)
	err := env.Run("deploy", func() error {
		if err := config.Validate(p); err != nil {
			return err
		}
		if err := env.RequireAuth(p.Owner); err != nil {
			return err
		}
		if err := ownable.SetOwner(env, p.Owner); err != nil {
			return err
		}

		puts := []struct {
			key string
			val any
		}{
			{keyName, collectionName},
			{keySymbol, collectionSymbol},
			{keyStablecoin, p.Stablecoin},
			{keyReceiver, p.Receiver},
			{keyPayer, p.Payer},
			{keyPrice, p.Price},
			{keyTotalSupply, p.TotalSupply},
			{keyMinMint, p.MinMint},
			{keyMaxInvestor, p.MaxPerInvestor},
			{keyIntervals, p.Intervals},
			{keyPercentages, p.Percentages},
			{keyCurrentSupply, uint32(0)},
			{keyBeginDate, uint64(0)},
			{keyStarted, false},
			{keyState, StageBuying},
			{keyStageRelease, int64(0)},
			{keyInvestors, []host.Address{}},
		}
		for _, kv := range puts {
			if err := env.PutValue(kv.key, kv.val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Open attaches to an already-deployed contract, e.g. after reopening a
// persistent store.
func Open(env *host.Env, tokens token.Resolver) *Contract {
	return &Contract{
		env:    env,
		units:  nft.NewLedger(env),
		tokens: tokens,
	}
}

// Name returns the NFT collection name.
func (c *Contract) Name() (string, error) {
	var s string
	if _, err := c.env.GetValue(keyName, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Symbol returns the NFT collection symbol.
func (c *Contract) Symbol() (string, error) {
	var s string
	if _, err := c.env.GetValue(keySymbol, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Owner returns the contract owner.
func (c *Contract) Owner() (host.Address, error) {
	return ownable.Owner(c.env)
}

// Stablecoin returns the payment token contract address.
func (c *Contract) Stablecoin() (host.Address, error) {
	return c.requiredAddress(keyStablecoin)
}

// SetStablecoin rotates the payment token address. Owner only.
func (c *Contract) SetStablecoin(addr host.Address) error {
	return c.setAddress("set_stablecoin", keyStablecoin, addr)
}

// Receiver returns the primary-sale proceeds address.
func (c *Contract) Receiver() (host.Address, error) {
	return c.requiredAddress(keyReceiver)
}

// SetReceiver rotates the proceeds address. Owner only.
func (c *Contract) SetReceiver(addr host.Address) error {
	return c.setAddress("set_receiver", keyReceiver, addr)
}

// Payer returns the distribution-funding address.
func (c *Contract) Payer() (host.Address, error) {
	return c.requiredAddress(keyPayer)
}

// SetPayer rotates the distribution-funding address. Owner only.
func (c *Contract) SetPayer(addr host.Address) error {
	return c.setAddress("set_payer", keyPayer, addr)
}

func (c *Contract) setAddress(op, key string, addr host.Address) error {
	return c.env.Run(op, func() error {
		if err := ownable.RequireOwner(c.env); err != nil {
			return err
		}
		if addr.IsZero() {
			return host.ErrInvalidAddress
		}
		return c.env.PutValue(key, addr)
	})
}

// Price returns the unit price in whole stablecoin tokens.
func (c *Contract) Price() (int64, error) {
	return c.requiredInt64(keyPrice)
}

// TotalSupply returns the supply cap.
func (c *Contract) TotalSupply() (uint32, error) {
	return c.requiredUint32(keyTotalSupply)
}

// CurrentSupply returns the number of units minted so far.
func (c *Contract) CurrentSupply() (uint32, error) {
	var v uint32
	if _, err := c.env.GetValue(keyCurrentSupply, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// BalanceOf returns how many units addr holds.
func (c *Contract) BalanceOf(addr host.Address) (uint32, error) {
	return c.units.BalanceOf(addr)
}

// OwnerOf returns the holder of a unit.
func (c *Contract) OwnerOf(tokenID uint32) (host.Address, error) {
	return c.units.OwnerOf(tokenID)
}

// IsApprovedForAll reports whether operator holds approval-for-all from
// owner on the unit ledger.
func (c *Contract) IsApprovedForAll(owner, operator host.Address) (bool, error) {
	return c.units.IsApprovedForAll(owner, operator)
}

// SetApprovalForAll grants or revokes operator's standing authorization over
// owner's units. The marketplace requires sellers to have granted it to the
// contract address before trading. owner must authorize.
func (c *Contract) SetApprovalForAll(owner, operator host.Address, approved bool) error {
	return c.env.Run("set_approval_for_all", func() error {
		if err := c.env.RequireAuth(owner); err != nil {
			return err
		}
		return c.units.SetApprovalForAll(owner, operator, approved)
	})
}

// intervals returns the stage schedule boundaries.
func (c *Contract) intervals() ([]uint64, error) {
	var v []uint64
	ok, err := c.env.GetValue(keyIntervals, &v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateNotSet
	}
	return v, nil
}

// percentages returns the per-stage ROI values.
func (c *Contract) percentages() ([]int64, error) {
	var v []int64
	ok, err := c.env.GetValue(keyPercentages, &v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStateNotSet
	}
	return v, nil
}

// stablecoin resolves the current payment token.
func (c *Contract) stablecoin() (token.Token, error) {
	addr, err := c.Stablecoin()
	if err != nil {
		return nil, err
	}
	return c.tokens.Token(addr)
}

// tokenScale returns 10^decimals for the current payment token.
func tokenScale(tok token.Token) int64 {
	scale := int64(1)
	for i := uint32(0); i < tok.Decimals(); i++ {
		scale *= 10
	}
	return scale
}
