// Package token defines the fungible-token capability consumed by the Minah
// contract for payment settlement, plus a mock stablecoin implementation for
// tests and local deployments. The core only ever uses Balance, Allowance,
// and TransferFrom; the rest of the surface exists so the mock can stand in
// for a real token contract end to end.
package token

import "github.com/minahlabs/libminah-go/host"

// Token is the standard fungible-token interface. Amounts are in base units
// (scaled by Decimals) and never negative.
type Token interface {
	// Decimals returns the number of decimal places in the token's base unit.
	Decimals() uint32

	// Balance returns the balance of addr, zero for unknown addresses.
	Balance(addr host.Address) (int64, error)

	// Allowance returns how much spender may move out of owner's balance.
	Allowance(owner, spender host.Address) (int64, error)

	// Transfer moves amount from from to to. from must authorize.
	Transfer(from, to host.Address, amount int64) error

	// TransferFrom moves amount from from to to on spender's authority,
	// consuming spender's allowance.
	TransferFrom(spender, from, to host.Address, amount int64) error

	// Approve sets spender's allowance over owner's balance. owner must
	// authorize.
	Approve(owner, spender host.Address, amount int64) error
}

// Resolver maps a token contract address to its Token implementation. The
// Minah contract stores the stablecoin address in its own state and resolves
// it per call, so the owner can rotate the token without redeploying.
type Resolver interface {
	Token(addr host.Address) (Token, error)
}

// Registry is a map-backed Resolver.
type Registry struct {
	tokens map[host.Address]Token
}

// Compile-time interface check.
var _ Resolver = (*Registry)(nil)

// NewRegistry creates an empty token registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[host.Address]Token)}
}

// Register binds addr to tok.
func (r *Registry) Register(addr host.Address, tok Token) {
	r.tokens[addr] = tok
}

// Token resolves addr.
func (r *Registry) Token(addr host.Address) (Token, error) {
	tok, ok := r.tokens[addr]
	if !ok {
		return nil, ErrUnknownToken
	}
	return tok, nil
}
