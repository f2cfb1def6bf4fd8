package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minahlabs/libminah-go/host"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	auth := host.NewMockAuth()
	auth.AllowAll()
	hl := host.NewLedger(host.NewMemStore(), host.NewManualClock(0), auth, host.NewEventRecorder())
	contract, err := host.GenerateAddress()
	require.NoError(t, err)
	return NewLedger(hl.Env(contract))
}

func addr(t *testing.T) host.Address {
	t.Helper()
	a, err := host.GenerateAddress()
	require.NoError(t, err)
	return a
}

func TestBatchMint_ConsecutiveIDs(t *testing.T) {
	l := newTestLedger(t)
	alice := addr(t)
	bob := addr(t)

	first, err := l.BatchMint(alice, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), first)

	first, err = l.BatchMint(bob, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), first, "ids continue where the last mint stopped")

	total, err := l.TotalMinted()
	require.NoError(t, err)
	assert.Equal(t, uint32(5), total)

	for id := uint32(0); id < 3; id++ {
		owner, err := l.OwnerOf(id)
		require.NoError(t, err)
		assert.Equal(t, alice, owner)
	}
	for id := uint32(3); id < 5; id++ {
		owner, err := l.OwnerOf(id)
		require.NoError(t, err)
		assert.Equal(t, bob, owner)
	}
}

func TestBatchMint_Invalid(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.BatchMint(host.ZeroAddress, 1)
	assert.ErrorIs(t, err, ErrZeroAddress)

	_, err = l.BatchMint(addr(t), 0)
	assert.ErrorIs(t, err, ErrZeroAmount)
}

func TestBalanceOf_DefaultZero(t *testing.T) {
	l := newTestLedger(t)
	bal, err := l.BalanceOf(addr(t))
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func TestOwnerOf_Unminted(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.OwnerOf(99)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestUpdate_MovesOwnershipAndBalances(t *testing.T) {
	l := newTestLedger(t)
	alice := addr(t)
	bob := addr(t)

	_, err := l.BatchMint(alice, 2)
	require.NoError(t, err)

	require.NoError(t, l.Update(alice, bob, 0))

	owner, err := l.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, bob, owner)

	aliceBal, err := l.BalanceOf(alice)
	require.NoError(t, err)
	bobBal, err := l.BalanceOf(bob)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), aliceBal)
	assert.Equal(t, uint32(1), bobBal)
}

func TestUpdate_WrongOwner(t *testing.T) {
	l := newTestLedger(t)
	alice := addr(t)
	bob := addr(t)

	_, err := l.BatchMint(alice, 1)
	require.NoError(t, err)

	err = l.Update(bob, alice, 0)
	assert.ErrorIs(t, err, ErrNotTokenOwner)
}

func TestApprovalForAll(t *testing.T) {
	l := newTestLedger(t)
	owner := addr(t)
	operator := addr(t)

	approved, err := l.IsApprovedForAll(owner, operator)
	require.NoError(t, err)
	assert.False(t, approved, "no approval by default")

	require.NoError(t, l.SetApprovalForAll(owner, operator, true))
	approved, err = l.IsApprovedForAll(owner, operator)
	require.NoError(t, err)
	assert.True(t, approved)

	require.NoError(t, l.SetApprovalForAll(owner, operator, false))
	approved, err = l.IsApprovedForAll(owner, operator)
	require.NoError(t, err)
	assert.False(t, approved)
}
