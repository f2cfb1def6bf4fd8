// Package nft implements the non-fungible base ledger the Minah contract
// drives: consecutive batch minting, per-address balances, per-token
// ownership, and operator (approval-for-all) bookkeeping. It deliberately
// exposes no public transfer entry point; ownership moves only through
// Update, which the owning contract gates.
package nft

import (
	"fmt"
	"strconv"

	"github.com/minahlabs/libminah-go/host"
)

const (
	keyNextID = "nft/next_id"

	ownerPrefix    = "nft/own/"
	balancePrefix  = "nft/bal/"
	operatorPrefix = "nft/opr/"
)

// Ledger tracks NFT ownership inside a contract's keyspace.
type Ledger struct {
	env *host.Env
}

// NewLedger creates a ledger over env.
func NewLedger(env *host.Env) *Ledger {
	return &Ledger{env: env}
}

// BatchMint mints amount consecutive token ids to to and returns the first
// id. Ids start at 0 and are never reused.
func (l *Ledger) BatchMint(to host.Address, amount uint32) (uint32, error) {
	if to.IsZero() {
		return 0, ErrZeroAddress
	}
	if amount == 0 {
		return 0, ErrZeroAmount
	}
	var next uint32
	if _, err := l.env.GetValue(keyNextID, &next); err != nil {
		return 0, err
	}
	for id := next; id < next+amount; id++ {
		if err := l.env.PutValue(ownerKey(id), to); err != nil {
			return 0, err
		}
	}
	if err := l.env.PutValue(keyNextID, next+amount); err != nil {
		return 0, err
	}
	bal, err := l.BalanceOf(to)
	if err != nil {
		return 0, err
	}
	if err := l.setBalance(to, bal+amount); err != nil {
		return 0, err
	}
	return next, nil
}

// BalanceOf returns how many tokens addr holds, zero for unknown addresses.
func (l *Ledger) BalanceOf(addr host.Address) (uint32, error) {
	var bal uint32
	if _, err := l.env.GetValue(balancePrefix+addr.Hex(), &bal); err != nil {
		return 0, err
	}
	return bal, nil
}

// OwnerOf returns the owner of tokenID.
func (l *Ledger) OwnerOf(tokenID uint32) (host.Address, error) {
	var owner host.Address
	ok, err := l.env.GetValue(ownerKey(tokenID), &owner)
	if err != nil {
		return host.ZeroAddress, err
	}
	if !ok {
		return host.ZeroAddress, fmt.Errorf("%w: id %d", ErrTokenNotFound, tokenID)
	}
	return owner, nil
}

// TotalMinted returns the number of tokens minted so far.
func (l *Ledger) TotalMinted() (uint32, error) {
	var next uint32
	if _, err := l.env.GetValue(keyNextID, &next); err != nil {
		return 0, err
	}
	return next, nil
}

// SetApprovalForAll grants or revokes operator's standing authorization over
// every token owner holds.
func (l *Ledger) SetApprovalForAll(owner, operator host.Address, approved bool) error {
	if owner.IsZero() || operator.IsZero() {
		return ErrZeroAddress
	}
	return l.env.PutValue(operatorKey(owner, operator), approved)
}

// IsApprovedForAll reports whether operator holds approval-for-all from
// owner.
func (l *Ledger) IsApprovedForAll(owner, operator host.Address) (bool, error) {
	var approved bool
	if _, err := l.env.GetValue(operatorKey(owner, operator), &approved); err != nil {
		return false, err
	}
	return approved, nil
}

// Update moves tokenID from from to to, adjusting both balances. It is the
// only ownership mutation besides minting; callers are responsible for any
// approval or phase gating.
func (l *Ledger) Update(from, to host.Address, tokenID uint32) error {
	if to.IsZero() {
		return ErrZeroAddress
	}
	owner, err := l.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if owner != from {
		return fmt.Errorf("%w: id %d owned by %s, not %s", ErrNotTokenOwner, tokenID, owner.Hex(), from.Hex())
	}
	fromBal, err := l.BalanceOf(from)
	if err != nil {
		return err
	}
	if fromBal == 0 {
		return fmt.Errorf("%w: %s", ErrNotTokenOwner, from.Hex())
	}
	if err := l.setBalance(from, fromBal-1); err != nil {
		return err
	}
	toBal, err := l.BalanceOf(to)
	if err != nil {
		return err
	}
	if err := l.setBalance(to, toBal+1); err != nil {
		return err
	}
	return l.env.PutValue(ownerKey(tokenID), to)
}

func (l *Ledger) setBalance(addr host.Address, bal uint32) error {
	return l.env.PutValue(balancePrefix+addr.Hex(), bal)
}

func ownerKey(tokenID uint32) string {
	return ownerPrefix + strconv.FormatUint(uint64(tokenID), 10)
}

func operatorKey(owner, operator host.Address) string {
	return operatorPrefix + owner.Hex() + "/" + operator.Hex()
}
