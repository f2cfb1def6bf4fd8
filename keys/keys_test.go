package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testKeyring(t *testing.T) *Keyring {
	t.Helper()
	seed, err := SeedFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	kr, err := NewKeyring(seed)
	require.NoError(t, err)
	return kr
}

func TestGenerateMnemonic(t *testing.T) {
	m12, err := GenerateMnemonic(Mnemonic12Words)
	require.NoError(t, err)
	_, err = SeedFromMnemonic(m12, "")
	assert.NoError(t, err, "generated mnemonic must be valid")

	m24, err := GenerateMnemonic(Mnemonic24Words)
	require.NoError(t, err)
	assert.NotEqual(t, m12, m24)

	_, err = GenerateMnemonic(200)
	assert.ErrorIs(t, err, ErrInvalidEntropy)
}

func TestSeedFromMnemonic(t *testing.T) {
	seed1, err := SeedFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	assert.Len(t, seed1, 64)

	seed2, err := SeedFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, seed1, seed2, "derivation is deterministic")

	withPass, err := SeedFromMnemonic(testMnemonic, "passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, seed1, withPass, "passphrase participates in derivation")

	_, err = SeedFromMnemonic("not a mnemonic", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestNewKeyring_EmptySeed(t *testing.T) {
	_, err := NewKeyring(nil)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDeriveRole(t *testing.T) {
	kr := testKeyring(t)

	owner, err := kr.DeriveRole(RoleOwner)
	require.NoError(t, err)
	receiver, err := kr.DeriveRole(RoleReceiver)
	require.NoError(t, err)
	payer, err := kr.DeriveRole(RolePayer)
	require.NoError(t, err)

	assert.Equal(t, "m/44'/148'/0'/0/0", owner.Path)
	assert.Equal(t, "m/44'/148'/0'/0/1", receiver.Path)
	assert.Equal(t, "m/44'/148'/0'/0/2", payer.Path)

	// Distinct slots give distinct addresses.
	assert.NotEqual(t, owner.Address(), receiver.Address())
	assert.NotEqual(t, receiver.Address(), payer.Address())
	assert.False(t, owner.Address().IsZero())

	_, err = kr.DeriveRole(Role(3))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestDeriveRole_Deterministic(t *testing.T) {
	a, err := testKeyring(t).DeriveRole(RoleOwner)
	require.NoError(t, err)
	b, err := testKeyring(t).DeriveRole(RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, a.Address(), b.Address())
	assert.Equal(t, a.PrivateKey.Serialize(), b.PrivateKey.Serialize())
}

func TestDeriveInvestor(t *testing.T) {
	kr := testKeyring(t)

	first, err := kr.DeriveInvestor(0)
	require.NoError(t, err)
	second, err := kr.DeriveInvestor(1)
	require.NoError(t, err)

	assert.Equal(t, "m/44'/148'/1'/0/0", first.Path)
	assert.NotEqual(t, first.Address(), second.Address())

	// The investor account is disjoint from the role account.
	owner, err := kr.DeriveRole(RoleOwner)
	require.NoError(t, err)
	assert.NotEqual(t, owner.Address(), first.Address())
}

func TestDeriveInvestor_IndexOutOfRange(t *testing.T) {
	kr := testKeyring(t)
	_, err := kr.DeriveInvestor(1 << 31)
	assert.ErrorIs(t, err, ErrDerivationFailed)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "owner", RoleOwner.String())
	assert.Equal(t, "receiver", RoleReceiver.String())
	assert.Equal(t, "payer", RolePayer.String())
	assert.Equal(t, "role(7)", Role(7).String())
}
