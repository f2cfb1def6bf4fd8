package minah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minahlabs/libminah-go/config"
	"github.com/minahlabs/libminah-go/host"
	"github.com/minahlabs/libminah-go/ownable"
)

func TestDeploy_InitialState(t *testing.T) {
	f := newFixture(t)

	name, err := f.contract.Name()
	require.NoError(t, err)
	assert.Equal(t, "Minah", name)

	symbol, err := f.contract.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "MNH", symbol)

	owner, err := f.contract.Owner()
	require.NoError(t, err)
	assert.Equal(t, f.owner, owner)

	assert.Equal(t, uint32(0), f.supply())
	assert.Equal(t, StageBuying, f.state())

	started, err := f.contract.IsChronometerStarted()
	require.NoError(t, err)
	assert.False(t, started)

	begin, err := f.contract.BeginDate()
	require.NoError(t, err)
	assert.Zero(t, begin)

	price, err := f.contract.Price()
	require.NoError(t, err)
	assert.Equal(t, int64(1), price)

	count, err := f.contract.InvestorCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	stateName, err := f.contract.StateName()
	require.NoError(t, err)
	assert.Equal(t, "BuyingPhase", stateName)
}

func TestDeploy_InvalidParams(t *testing.T) {
	p := testParams(t)
	p.Price = 0

	auth := host.NewMockAuth()
	auth.AllowAll()
	ledger := host.NewLedger(host.NewMemStore(), host.NewManualClock(0), auth, host.NewEventRecorder())
	_, err := Deploy(ledger.Env(addr(t)), nil, p)
	assert.ErrorIs(t, err, config.ErrInvalidPrice)
}

func TestSettersAndGetters(t *testing.T) {
	f := newFixture(t)

	coin, err := f.contract.Stablecoin()
	require.NoError(t, err)
	assert.Equal(t, f.coinAddr, coin)

	receiver, err := f.contract.Receiver()
	require.NoError(t, err)
	assert.Equal(t, f.receiver, receiver)

	payer, err := f.contract.Payer()
	require.NoError(t, err)
	assert.Equal(t, f.payer, payer)

	newCoin := addr(t)
	newReceiver := addr(t)
	newPayer := addr(t)
	require.NoError(t, f.contract.SetStablecoin(newCoin))
	require.NoError(t, f.contract.SetReceiver(newReceiver))
	require.NoError(t, f.contract.SetPayer(newPayer))

	coin, err = f.contract.Stablecoin()
	require.NoError(t, err)
	assert.Equal(t, newCoin, coin)
	receiver, err = f.contract.Receiver()
	require.NoError(t, err)
	assert.Equal(t, newReceiver, receiver)
	payer, err = f.contract.Payer()
	require.NoError(t, err)
	assert.Equal(t, newPayer, payer)
}

func TestOwnerOnlyOperations(t *testing.T) {
	// Granular auth: grant the owner only for deployment, then revoke so
	// every owner-gated operation fails authorization.
	auth := host.NewMockAuth()
	ledger := host.NewLedger(host.NewMemStore(), host.NewManualClock(0), auth, host.NewEventRecorder())

	p := testParams(t)
	auth.Grant(p.Owner)
	contract, err := Deploy(ledger.Env(addr(t)), nil, p)
	require.NoError(t, err)
	auth.Revoke(p.Owner)

	other := addr(t)
	auth.Grant(other)

	assert.ErrorIs(t, contract.SetStablecoin(addr(t)), ownable.ErrNotOwner)
	assert.ErrorIs(t, contract.SetReceiver(addr(t)), ownable.ErrNotOwner)
	assert.ErrorIs(t, contract.SetPayer(addr(t)), ownable.ErrNotOwner)
	assert.ErrorIs(t, contract.RegisterInvestor(other), ownable.ErrNotOwner)
	assert.ErrorIs(t, contract.StartChronometer(), ownable.ErrNotOwner)
	assert.ErrorIs(t, contract.ReleaseDistribution(), ownable.ErrNotOwner)
}

func TestRegisterInvestor(t *testing.T) {
	f := newFixture(t)
	investor := addr(t)

	isInvestor, err := f.contract.IsInvestor(investor)
	require.NoError(t, err)
	assert.False(t, isInvestor, "unknown address defaults to false")

	f.register(investor)

	isInvestor, err = f.contract.IsInvestor(investor)
	require.NoError(t, err)
	assert.True(t, isInvestor)

	count, err := f.contract.InvestorCount()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count)

	assert.Zero(t, f.claimed(investor))

	events := f.events.ByTopic(TopicInvestorCreated)
	require.Len(t, events, 1)
	assert.Equal(t, investor, events[0].Fields["investor"])
	assert.Equal(t, f.contractAddr, events[0].Contract)
}

func TestRegisterInvestor_Twice(t *testing.T) {
	f := newFixture(t)
	investor := addr(t)

	f.register(investor)
	err := f.contract.RegisterInvestor(investor)
	assert.ErrorIs(t, err, ErrAlreadyInvestor)

	count, err := f.contract.InvestorCount()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count, "failed call must not grow the registry")
}

func TestRegisterInvestor_ZeroAddress(t *testing.T) {
	f := newFixture(t)
	err := f.contract.RegisterInvestor(host.ZeroAddress)
	assert.ErrorIs(t, err, host.ErrInvalidAddress)
}

func TestClaimedAmount_UnknownAddressIsZero(t *testing.T) {
	f := newFixture(t)
	assert.Zero(t, f.claimed(addr(t)))
}

func TestBalanceQueries_NonHolders(t *testing.T) {
	f := newFixture(t)
	assert.Zero(t, f.unitBalance(addr(t)))

	_, err := f.contract.OwnerOf(0)
	assert.Error(t, err, "no unit minted yet")
}
