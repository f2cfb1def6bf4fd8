package minah

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minahlabs/libminah-go/config"
	"github.com/minahlabs/libminah-go/host"
	"github.com/minahlabs/libminah-go/token"
)

const (
	testDecimals = 7
	testScale    = 10_000_000 // 10^testDecimals

	// Large enough to bankroll every investor and the payer in any test.
	testPremint = int64(100_000_000) * testScale
)

// testIntervals compresses the production schedule to minutes, as the
// original deployments did on test networks.
var testIntervals = []uint64{60, 120, 180, 240, 300, 360, 420, 480, 540, 600}

var testPercentages = []int64{
	4 * config.PercentScale,
	26_700_000, 26_700_000, 26_700_000, 26_700_000, 26_700_000,
	26_700_000, 26_700_000, 26_700_000, 26_700_000,
}

// fixture wires a full in-memory deployment: host ledger, mock stablecoin,
// and the Minah contract.
type fixture struct {
	t *testing.T

	clock  *host.ManualClock
	auth   *host.MockAuth
	events *host.EventRecorder

	coin     *token.Stablecoin
	coinAddr host.Address

	contract     *Contract
	contractAddr host.Address

	owner    host.Address
	receiver host.Address
	payer    host.Address

	params config.Params
}

func addr(t *testing.T) host.Address {
	t.Helper()
	a, err := host.GenerateAddress()
	require.NoError(t, err)
	return a
}

// newFixture deploys the contract with every authorization mocked, the way
// the original test harness mocks all auths.
func newFixture(t *testing.T) *fixture {
	return newFixtureParams(t, testParams(t))
}

func testParams(t *testing.T) config.Params {
	t.Helper()
	return config.Params{
		Owner:          addr(t),
		Stablecoin:     addr(t),
		Receiver:       addr(t),
		Payer:          addr(t),
		Price:          1,
		TotalSupply:    4500,
		MinMint:        40,
		MaxPerInvestor: 150,
		Intervals:      testIntervals,
		Percentages:    testPercentages,
	}
}

func newFixtureParams(t *testing.T, p config.Params) *fixture {
	t.Helper()

	f := &fixture{
		t:            t,
		clock:        host.NewManualClock(1_700_000_000),
		auth:         host.NewMockAuth(),
		events:       host.NewEventRecorder(),
		coinAddr:     p.Stablecoin,
		contractAddr: addr(t),
		owner:        p.Owner,
		receiver:     p.Receiver,
		payer:        p.Payer,
		params:       p,
	}
	f.auth.AllowAll()

	ledger := host.NewLedger(host.NewMemStore(), f.clock, f.auth, f.events)

	coin, err := token.DeployStablecoin(ledger.Env(f.coinAddr), f.owner, testDecimals, testPremint)
	require.NoError(t, err)
	f.coin = coin

	registry := token.NewRegistry()
	registry.Register(f.coinAddr, coin)

	contract, err := Deploy(ledger.Env(f.contractAddr), registry, p)
	require.NoError(t, err)
	f.contract = contract

	return f
}

// register registers an investor, asserting success.
func (f *fixture) register(investor host.Address) {
	f.t.Helper()
	require.NoError(f.t, f.contract.RegisterInvestor(investor))
}

// fund moves stablecoin base units from the owner's premint to addr and
// approves the contract to spend the same amount on addr's behalf.
func (f *fixture) fund(addr host.Address, amount int64) {
	f.t.Helper()
	require.NoError(f.t, f.coin.Transfer(f.owner, addr, amount))
	require.NoError(f.t, f.coin.Approve(addr, f.contractAddr, amount))
}

// mintUnits registers investor if needed, funds the exact purchase price,
// and mints amount units.
func (f *fixture) mintUnits(investor host.Address, amount uint32) {
	f.t.Helper()
	isInvestor, err := f.contract.IsInvestor(investor)
	require.NoError(f.t, err)
	if !isInvestor {
		f.register(investor)
	}
	f.fund(investor, f.unitCost(amount))
	require.NoError(f.t, f.contract.Mint(investor, amount))
}

// unitCost returns the stablecoin base-unit price of amount units.
func (f *fixture) unitCost(amount uint32) int64 {
	return f.params.Price * int64(amount) * testScale
}

// fundPayer bankrolls and approves the distribution payer.
func (f *fixture) fundPayer(amount int64) {
	f.t.Helper()
	f.fund(f.payer, amount)
}

// start starts the chronometer.
func (f *fixture) start() {
	f.t.Helper()
	require.NoError(f.t, f.contract.StartChronometer())
}

// coinBalance returns addr's stablecoin balance.
func (f *fixture) coinBalance(addr host.Address) int64 {
	f.t.Helper()
	bal, err := f.coin.Balance(addr)
	require.NoError(f.t, err)
	return bal
}

// unitBalance returns addr's NFT balance.
func (f *fixture) unitBalance(addr host.Address) uint32 {
	f.t.Helper()
	bal, err := f.contract.BalanceOf(addr)
	require.NoError(f.t, err)
	return bal
}

// claimed returns addr's claimed-amount accumulator.
func (f *fixture) claimed(addr host.Address) int64 {
	f.t.Helper()
	c, err := f.contract.ClaimedAmount(addr)
	require.NoError(f.t, err)
	return c
}

// state returns the contract stage.
func (f *fixture) state() Stage {
	f.t.Helper()
	s, err := f.contract.CurrentState()
	require.NoError(f.t, err)
	return s
}

// supply returns the current supply counter.
func (f *fixture) supply() uint32 {
	f.t.Helper()
	s, err := f.contract.CurrentSupply()
	require.NoError(f.t, err)
	return s
}
