// Package config defines the deployment parameters of a Minah investment
// vehicle and loads them from configuration files.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/minahlabs/libminah-go/host"
)

// PercentScale is the fixed-point scale of ROI percentages: 7 decimal
// places, matching the stablecoin's base-unit scale. A value meaning 4% is
// stored as 4 * PercentScale.
const PercentScale = 10_000_000

// Params are the construction parameters of one Minah deployment. Price,
// caps, and the stage schedule are immutable after construction; the
// stablecoin, receiver, and payer addresses may be rotated by the owner.
type Params struct {
	// Owner is the contract owner: registers investors, starts the
	// chronometer, and triggers distributions.
	Owner host.Address

	// Stablecoin is the payment token contract address.
	Stablecoin host.Address

	// Receiver collects primary-sale proceeds.
	Receiver host.Address

	// Payer funds ROI distributions.
	Payer host.Address

	// Price is the unit price of one NFT, in whole stablecoin tokens.
	Price int64

	// TotalSupply caps the number of units ever minted.
	TotalSupply uint32

	// MinMint is the smallest primary-sale batch an investor may buy.
	MinMint uint32

	// MaxPerInvestor caps a single investor's holding during primary sale.
	MaxPerInvestor uint32

	// Intervals are stage boundaries in seconds elapsed since the
	// chronometer started, strictly increasing.
	Intervals []uint64

	// Percentages are the per-stage ROI values, scaled by PercentScale, one
	// per interval.
	Percentages []int64
}

// DefaultParams returns the canonical production schedule: 4500 units at
// price 455, batches of at least 40, at most 150 units per investor, and ten
// distributions from six months to three and a half years paying 4% then
// 2.67% each. Addresses are zero and must be filled in by the deployer.
func DefaultParams() Params {
	return Params{
		Price:          455,
		TotalSupply:    4500,
		MinMint:        40,
		MaxPerInvestor: 150,
		Intervals: []uint64{
			15_768_000,  // 6 months
			26_280_000,  // 10 months
			36_792_000,  // 1 year 2 months
			47_304_000,  // 1 year 6 months
			57_816_000,  // 1 year 10 months
			68_328_000,  // 2 years 2 months
			78_840_000,  // 2 years 6 months
			89_352_000,  // 2 years 10 months
			99_864_000,  // 3 years 2 months
			110_376_000, // 3 years 6 months
		},
		Percentages: []int64{
			4 * PercentScale,
			26_700_000, 26_700_000, 26_700_000, 26_700_000, 26_700_000,
			26_700_000, 26_700_000, 26_700_000, 26_700_000, // 2.67% each
		},
	}
}

// fileParams is the on-disk shape of Params: addresses as hex strings.
type fileParams struct {
	Owner          string   `mapstructure:"owner"`
	Stablecoin     string   `mapstructure:"stablecoin"`
	Receiver       string   `mapstructure:"receiver"`
	Payer          string   `mapstructure:"payer"`
	Price          int64    `mapstructure:"price"`
	TotalSupply    uint32   `mapstructure:"total_supply"`
	MinMint        uint32   `mapstructure:"min_mint"`
	MaxPerInvestor uint32   `mapstructure:"max_per_investor"`
	Intervals      []uint64 `mapstructure:"intervals"`
	Percentages    []int64  `mapstructure:"percentages"`
}

// Load reads deployment parameters from the file at path (any format viper
// understands, chosen by extension) and validates them.
func Load(path string) (Params, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	var fp fileParams
	if err := v.Unmarshal(&fp); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	p := Params{
		Price:          fp.Price,
		TotalSupply:    fp.TotalSupply,
		MinMint:        fp.MinMint,
		MaxPerInvestor: fp.MaxPerInvestor,
		Intervals:      fp.Intervals,
		Percentages:    fp.Percentages,
	}
	var err error
	if p.Owner, err = host.AddressFromHex(fp.Owner); err != nil {
		return Params{}, fmt.Errorf("owner: %w", err)
	}
	if p.Stablecoin, err = host.AddressFromHex(fp.Stablecoin); err != nil {
		return Params{}, fmt.Errorf("stablecoin: %w", err)
	}
	if p.Receiver, err = host.AddressFromHex(fp.Receiver); err != nil {
		return Params{}, fmt.Errorf("receiver: %w", err)
	}
	if p.Payer, err = host.AddressFromHex(fp.Payer); err != nil {
		return Params{}, fmt.Errorf("payer: %w", err)
	}
	if err := Validate(p); err != nil {
		return Params{}, err
	}
	return p, nil
}
