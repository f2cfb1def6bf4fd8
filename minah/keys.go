package minah

import "github.com/minahlabs/libminah-go/host"

// Storage keys of the contract's keyed instance state.
const (
	keyName          = "meta/name"
	keySymbol        = "meta/symbol"
	keyStablecoin    = "stablecoin"
	keyReceiver      = "receiver"
	keyPayer         = "payer"
	keyPrice         = "price"
	keyTotalSupply   = "total_supply"
	keyMinMint       = "min_mint"
	keyMaxInvestor   = "max_per_investor"
	keyIntervals     = "intervals"
	keyPercentages   = "percentages"
	keyCurrentSupply = "current_supply"
	keyBeginDate     = "begin_date"
	keyStarted       = "countdown_started"
	keyState         = "state"
	keyStageRelease  = "amount_to_release"
	keyInvestors     = "investors"

	investorPrefix = "investor/"
	claimedPrefix  = "claimed/"
)

func investorKey(addr host.Address) string { return investorPrefix + addr.Hex() }
func claimedKey(addr host.Address) string  { return claimedPrefix + addr.Hex() }

// requiredAddress reads an address that the constructor always sets.
func (c *Contract) requiredAddress(key string) (host.Address, error) {
	var addr host.Address
	ok, err := c.env.GetValue(key, &addr)
	if err != nil {
		return host.ZeroAddress, err
	}
	if !ok {
		return host.ZeroAddress, ErrStateNotSet
	}
	return addr, nil
}

// requiredUint64 reads a uint64 that the constructor always sets.
func (c *Contract) requiredUint64(key string) (uint64, error) {
	var v uint64
	ok, err := c.env.GetValue(key, &v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrStateNotSet
	}
	return v, nil
}

// requiredInt64 reads an int64 that the constructor always sets.
func (c *Contract) requiredInt64(key string) (int64, error) {
	var v int64
	ok, err := c.env.GetValue(key, &v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrStateNotSet
	}
	return v, nil
}

// requiredUint32 reads a uint32 that the constructor always sets.
func (c *Contract) requiredUint32(key string) (uint32, error) {
	var v uint32
	ok, err := c.env.GetValue(key, &v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrStateNotSet
	}
	return v, nil
}

// requiredBool reads a bool that the constructor always sets.
func (c *Contract) requiredBool(key string) (bool, error) {
	var v bool
	ok, err := c.env.GetValue(key, &v)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrStateNotSet
	}
	return v, nil
}
