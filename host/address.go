// Package host implements the deterministic contract host runtime: account
// addresses, keyed instance storage with whole-call atomicity, a manual
// clock, an authorization oracle, and an event sink. Contracts run against a
// shared Ledger and see their own keyspace through an Env view.
package host

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// AddressSize is the length of an account or contract address in bytes.
const AddressSize = 20

// Address identifies an account or contract instance on the host ledger.
// It is the HASH160 (RIPEMD160 of SHA256) of a compressed secp256k1 public key.
type Address [AddressSize]byte

// ZeroAddress is the all-zero address. It is never a valid participant.
var ZeroAddress Address

// AddressFromPubKey derives the address of a public key.
func AddressFromPubKey(pub *ec.PublicKey) Address {
	var a Address
	copy(a[:], bsvhash.Hash160(pub.Compressed()))
	return a
}

// GenerateAddress creates a fresh address from a newly generated keypair.
// Intended for tests and simulations.
func GenerateAddress() (Address, error) {
	priv, err := ec.NewPrivateKey()
	if err != nil {
		return ZeroAddress, fmt.Errorf("host: generate key: %w", err)
	}
	return AddressFromPubKey(priv.PubKey()), nil
}

// AddressFromHex parses a 40-character hex string into an Address.
func AddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != AddressSize {
		return ZeroAddress, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// Hex returns the full lowercase hex encoding of the address.
func (a Address) Hex() string { return hex.EncodeToString(a[:]) }

// IsZero reports whether the address is the zero address.
func (a Address) IsZero() bool { return a == ZeroAddress }

// String returns an abbreviated form for logs.
func (a Address) String() string { return hex.EncodeToString(a[:4]) + "…" }
