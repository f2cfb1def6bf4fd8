// Package keys derives the deterministic key hierarchy of a Minah
// deployment from a single BIP39 mnemonic.
//
// Key hierarchy: m/44'/148'/{account}'/0/{index}
// where account 0 holds the deployment roles (owner, receiver, payer at
// indices 0, 1, 2) and account 1 holds one key per investor. The seed is
// kept at rest in an encrypted keystore blob (see keystore.go).
package keys

import (
	"fmt"

	bip32 "github.com/bsv-blockchain/go-sdk/compat/bip32"
	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	chaincfg "github.com/bsv-blockchain/go-sdk/transaction/chaincfg"

	"github.com/minahlabs/libminah-go/host"
)

const (
	// Mnemonic entropy sizes.
	Mnemonic12Words = 128
	Mnemonic24Words = 256

	// BIP44 path constants.
	purposeBIP44 = 44
	coinType     = 148

	roleAccount     = 0
	investorAccount = 1

	externalChain = 0

	hardened = 0x80000000
)

// Role names a deployment-role key slot under the role account.
type Role uint32

const (
	// RoleOwner signs administration calls: registration, chronometer,
	// releases, parameter rotation.
	RoleOwner Role = iota
	// RoleReceiver collects primary-sale proceeds.
	RoleReceiver
	// RolePayer funds ROI distributions.
	RolePayer
)

// String returns the role's path-independent name.
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleReceiver:
		return "receiver"
	case RolePayer:
		return "payer"
	default:
		return fmt.Sprintf("role(%d)", uint32(r))
	}
}

// KeyPair holds one derived key and its ledger address.
type KeyPair struct {
	PrivateKey *ec.PrivateKey `json:"-"`
	PublicKey  *ec.PublicKey  `json:"public_key"`
	Path       string         `json:"path"`
}

// Address returns the host ledger address of the key.
func (k *KeyPair) Address() host.Address {
	return host.AddressFromPubKey(k.PublicKey)
}

// Keyring derives deployment keys from one master seed.
type Keyring struct {
	master *bip32.ExtendedKey
}

// GenerateMnemonic creates a new BIP39 mnemonic with the given entropy bits,
// Mnemonic12Words or Mnemonic24Words.
func GenerateMnemonic(entropyBits int) (string, error) {
	if entropyBits != Mnemonic12Words && entropyBits != Mnemonic24Words {
		return "", ErrInvalidEntropy
	}
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("keys: failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("keys: failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// SeedFromMnemonic derives the 64-byte BIP39 seed from mnemonic + optional
// passphrase. An empty passphrase still participates in the derivation.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("keys: failed to derive seed: %w", err)
	}
	return seed, nil
}

// NewKeyring builds a keyring from a BIP39 seed.
func NewKeyring(seed []byte) (*Keyring, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}
	master, err := bip32.NewMaster(seed, &chaincfg.MainNet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	return &Keyring{master: master}, nil
}

// DeriveRole derives a deployment-role key.
//
//	Path: m/44'/148'/0'/0/role
func (k *Keyring) DeriveRole(role Role) (*KeyPair, error) {
	if role > RolePayer {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, uint32(role))
	}
	return k.derive(roleAccount, uint32(role))
}

// DeriveInvestor derives the key for investor slot index.
//
//	Path: m/44'/148'/1'/0/index
func (k *Keyring) DeriveInvestor(index uint32) (*KeyPair, error) {
	if index >= hardened {
		return nil, fmt.Errorf("%w: index %d exceeds BIP32 boundary", ErrDerivationFailed, index)
	}
	return k.derive(investorAccount, index)
}

// derive walks m/44'/148'/account'/0/index.
func (k *Keyring) derive(account, index uint32) (*KeyPair, error) {
	steps := []uint32{
		purposeBIP44 + hardened,
		coinType + hardened,
		account + hardened,
		externalChain,
		index,
	}
	current := k.master
	for _, step := range steps {
		child, err := current.Child(step)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
		}
		current = child
	}

	priv, err := current.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	return &KeyPair{
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
		Path:       fmt.Sprintf("m/44'/148'/%d'/0/%d", account, index),
	}, nil
}
