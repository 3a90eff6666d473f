package ledger

import (
	"context"
	"testing"
	"time"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPositionStore struct {
	positions map[string]*core.Position
}

func newMemPositionStore() *memPositionStore {
	return &memPositionStore{positions: map[string]*core.Position{}}
}

func (s *memPositionStore) Find(ctx context.Context, address string) (*core.Position, error) {
	if p, ok := s.positions[address]; ok {
		clone := *p
		return &clone, nil
	}
	return &core.Position{Address: address}, nil
}

func (s *memPositionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	if position.ID == 0 {
		position.ID = uint64(len(s.positions) + 1)
	}
	clone := *position
	s.positions[position.Address] = &clone
	return nil
}

func (s *memPositionStore) All(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	for _, p := range s.positions {
		clone := *p
		positions = append(positions, &clone)
	}
	return positions, nil
}

type memPoolStore struct {
	pool core.Pool
}

func (s *memPoolStore) Init(ctx context.Context, genesis *core.Pool) error {
	s.pool = *genesis
	return nil
}

func (s *memPoolStore) Get(ctx context.Context) (*core.Pool, error) {
	clone := s.pool
	return &clone, nil
}

func (s *memPoolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	s.pool = *pool
	return nil
}

type memEventStore struct {
	events []*core.Event
}

func (s *memEventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	event.ID = uint64(len(s.events) + 1)
	s.events = append(s.events, event)
	return nil
}

func (s *memEventStore) List(ctx context.Context, fromID uint64, limit int) ([]*core.Event, error) {
	return s.events, nil
}

func (s *memEventStore) ListByAccount(ctx context.Context, account string, limit int) ([]*core.Event, error) {
	var events []*core.Event
	for _, e := range s.events {
		if e.Account == account {
			events = append(events, e)
		}
	}
	return events, nil
}

// memVault keeps external balances and custody in one map, moving value
// the way the wallet-backed vault does
type memVault struct {
	balances map[string]decimal.Decimal
}

func newMemVault() *memVault {
	return &memVault{balances: map[string]decimal.Decimal{}}
}

func (v *memVault) set(address string, amount string) {
	v.balances[address] = number.Decimal(amount)
}

func (v *memVault) balance(address string) decimal.Decimal {
	return v.balances[address]
}

func (v *memVault) move(from, to string, amount decimal.Decimal) error {
	if v.balances[from].LessThan(amount) {
		return core.ErrTransferFailed
	}
	v.balances[from] = v.balances[from].Sub(amount)
	v.balances[to] = v.balances[to].Add(amount)
	return nil
}

func (v *memVault) Pull(ctx context.Context, tx *db.DB, from string, amount decimal.Decimal) error {
	return v.move(from, core.CustodyAddress, amount)
}

func (v *memVault) Push(ctx context.Context, tx *db.DB, to string, amount decimal.Decimal) error {
	return v.move(core.CustodyAddress, to, amount)
}

type fakeOracle struct {
	price decimal.Decimal
	err   error
}

func (o *fakeOracle) LatestPrice(ctx context.Context) (decimal.Decimal, error) {
	if o.err != nil {
		return decimal.Zero, o.err
	}
	return o.price, nil
}

func (o *fakeOracle) PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*core.PriceTicker, error) {
	if o.err != nil {
		return nil, o.err
	}
	return &core.PriceTicker{Symbol: symbol, Price: o.price}, nil
}

type env struct {
	ledger    core.ILedgerService
	positions *memPositionStore
	pools     *memPoolStore
	events    *memEventStore
	vault     *memVault
	oracle    *fakeOracle
}

const (
	owner   = "owner"
	repayer = "repayer"
	userA   = "user-a"
	userB   = "user-b"
)

func newEnv(t *testing.T) *env {
	t.Helper()

	pools := &memPoolStore{}
	require.NoError(t, pools.Init(context.Background(), &core.Pool{
		TotalDeposits:        decimal.Zero,
		TotalBorrows:         decimal.Zero,
		BorrowInterestRate:   500,
		LiquidationThreshold: 8000,
		LiquidationBonus:     500,
		Owner:                owner,
		AuthorizedRepayer:    repayer,
	}))

	e := &env{
		positions: newMemPositionStore(),
		pools:     pools,
		events:    &memEventStore{},
		vault:     newMemVault(),
		oracle:    &fakeOracle{price: decimal.NewFromInt(1)},
	}
	e.ledger = New(nil, e.positions, e.pools, e.events, e.vault, e.oracle)

	e.vault.set(userA, "10000")
	e.vault.set(userB, "10000")
	e.vault.set(repayer, "10000")
	return e
}

func (e *env) requireInvariants(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	pool, err := e.pools.Get(ctx)
	require.NoError(t, err)

	positions, err := e.positions.All(ctx)
	require.NoError(t, err)

	// per-position borrow/deposit ratio is NOT asserted here: withdraw
	// deliberately lets a borrower pull collateral below the ratio
	deposits, borrows := decimal.Zero, decimal.Zero
	for _, p := range positions {
		deposits = deposits.Add(p.DepositBalance)
		borrows = borrows.Add(p.BorrowBalance)
		assert.False(t, p.BorrowBalance.IsNegative())
		assert.False(t, p.DepositBalance.IsNegative())
	}

	assert.True(t, pool.TotalDeposits.Equal(deposits), "totalDeposits %s != sum %s", pool.TotalDeposits, deposits)
	assert.True(t, pool.TotalBorrows.Equal(borrows), "totalBorrows %s != sum %s", pool.TotalBorrows, borrows)
	assert.True(t, pool.TotalBorrows.LessThanOrEqual(pool.TotalDeposits))
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	event, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	assert.Equal(t, core.EventDeposited, event.Type)
	assert.Equal(t, userA, event.Account)
	assert.Equal(t, "1000", event.Amount.String())

	data, err := e.ledger.GetUserAccountData(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, "1000", data.DepositBalance.String())

	pool, _ := e.pools.Get(ctx)
	assert.Equal(t, "1000", pool.TotalDeposits.String())
	assert.Equal(t, "1000", e.vault.balance(core.CustodyAddress).String())
	e.requireInvariants(t)

	t.Run("zero amount", func(t *testing.T) {
		_, err := e.ledger.Deposit(ctx, userA, decimal.Zero)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})

}

func TestDepositTransferFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.vault.set(userA, "10")

	// the wallet-backed vault rejects the pull; against a real db the whole
	// transaction rolls back, so a fresh env keeps the fakes honest here
	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("100"))
	assert.Equal(t, core.ErrTransferFailed, err)
	assert.Equal(t, "10", e.vault.balance(userA).String())
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		before := e.vault.balance(userA)
		_, err := e.ledger.Withdraw(ctx, userA, number.Decimal("1000"))
		require.NoError(t, err)

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.True(t, data.DepositBalance.IsZero())
		assert.Equal(t, before.Add(number.Decimal("1000")).String(), e.vault.balance(userA).String())
		e.requireInvariants(t)
	})

	_, err = e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)

	t.Run("zero amount", func(t *testing.T) {
		_, err := e.ledger.Withdraw(ctx, userA, decimal.Zero)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})

	t.Run("over deposit balance", func(t *testing.T) {
		_, err := e.ledger.Withdraw(ctx, userA, number.Decimal("1001"))
		assert.Equal(t, core.ErrInsufficientDepositBalance, err)
	})

	t.Run("over pool liquidity", func(t *testing.T) {
		// A borrows and then pulls most of its own collateral, leaving the
		// pool with less cash than B's full deposit
		_, err := e.ledger.Borrow(ctx, userA, number.Decimal("500"))
		require.NoError(t, err)
		_, err = e.ledger.Deposit(ctx, userB, number.Decimal("1000"))
		require.NoError(t, err)
		_, err = e.ledger.Withdraw(ctx, userA, number.Decimal("900"))
		require.NoError(t, err)

		// liquidity is 1100 - 500 = 600
		_, err = e.ledger.Withdraw(ctx, userB, number.Decimal("1000"))
		assert.Equal(t, core.ErrInsufficientLiquidity, err)
		e.requireInvariants(t)
	})
}

func TestBorrow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)

	t.Run("within collateral limit", func(t *testing.T) {
		before := e.vault.balance(userA)
		event, err := e.ledger.Borrow(ctx, userA, number.Decimal("400"))
		require.NoError(t, err)
		assert.Equal(t, core.EventBorrowed, event.Type)

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, "400", data.BorrowBalance.String())
		assert.Equal(t, before.Add(number.Decimal("400")).String(), e.vault.balance(userA).String())
		e.requireInvariants(t)
	})

	t.Run("beyond collateral limit", func(t *testing.T) {
		// scenario 2: 400 outstanding, 101 more exceeds 500
		_, err := e.ledger.Borrow(ctx, userA, number.Decimal("101"))
		assert.Equal(t, core.ErrInsufficientCollateral, err)
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		_, err := e.ledger.Borrow(ctx, userA, number.Decimal("100"))
		require.NoError(t, err)
		e.requireInvariants(t)

		_, err = e.ledger.Borrow(ctx, userA, number.Decimal("0.00000001"))
		assert.Equal(t, core.ErrInsufficientCollateral, err)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := e.ledger.Borrow(ctx, userA, decimal.Zero)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})

	t.Run("dead price feed", func(t *testing.T) {
		e.oracle.err = core.ErrInvalidPrice
		defer func() { e.oracle.err = nil }()

		_, err := e.ledger.Borrow(ctx, userA, number.Decimal("1"))
		assert.Equal(t, core.ErrInvalidPrice, err)
	})

}

func TestBorrowLiquidityBound(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("2000"))
	require.NoError(t, err)
	_, err = e.ledger.Borrow(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	_, err = e.ledger.Deposit(ctx, userB, number.Decimal("1000"))
	require.NoError(t, err)

	// A drains the pool down to 200 cash; B has 500 of untapped
	// deposit-backed capacity but the cash is not there
	_, err = e.ledger.Withdraw(ctx, userA, number.Decimal("1800"))
	require.NoError(t, err)

	_, err = e.ledger.Borrow(ctx, userB, number.Decimal("500"))
	assert.Equal(t, core.ErrInsufficientLiquidity, err)
	e.requireInvariants(t)

	_, err = e.ledger.Borrow(ctx, userB, number.Decimal("200"))
	require.NoError(t, err)
	e.requireInvariants(t)
}

func TestRepay(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	_, err = e.ledger.Borrow(ctx, userA, number.Decimal("400"))
	require.NoError(t, err)

	t.Run("full repayment with interest", func(t *testing.T) {
		// scenario 3: repay 400 at 500 bps pulls 420
		before := e.vault.balance(userA)
		event, err := e.ledger.Repay(ctx, userA, number.Decimal("400"))
		require.NoError(t, err)
		assert.Equal(t, "400", event.Principal.String())
		assert.Equal(t, "20", event.Interest.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.True(t, data.BorrowBalance.IsZero())
		assert.Equal(t, before.Sub(number.Decimal("420")).String(), e.vault.balance(userA).String())
		e.requireInvariants(t)
	})

	t.Run("no outstanding borrow", func(t *testing.T) {
		_, err := e.ledger.Repay(ctx, userA, number.Decimal("100"))
		assert.Equal(t, core.ErrNoOutstandingBorrow, err)
	})

	t.Run("capped at outstanding debt", func(t *testing.T) {
		// scenario 4: repay 1000 against 200 outstanding pulls 210
		_, err := e.ledger.Borrow(ctx, userA, number.Decimal("200"))
		require.NoError(t, err)

		before := e.vault.balance(userA)
		event, err := e.ledger.Repay(ctx, userA, number.Decimal("1000"))
		require.NoError(t, err)
		assert.Equal(t, "200", event.Principal.String())
		assert.Equal(t, "10", event.Interest.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.True(t, data.BorrowBalance.IsZero(), "repay clamps at zero, never negative")
		assert.Equal(t, before.Sub(number.Decimal("210")).String(), e.vault.balance(userA).String())
		e.requireInvariants(t)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := e.ledger.Repay(ctx, userA, decimal.Zero)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})
}

func TestRepayOnBehalf(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	_, err = e.ledger.Borrow(ctx, userA, number.Decimal("400"))
	require.NoError(t, err)

	t.Run("unauthorized caller", func(t *testing.T) {
		_, err := e.ledger.RepayOnBehalf(ctx, userB, userA, number.Decimal("100"))
		assert.Equal(t, core.ErrUnauthorized, err)
	})

	t.Run("empty borrower", func(t *testing.T) {
		_, err := e.ledger.RepayOnBehalf(ctx, repayer, "", number.Decimal("100"))
		assert.Equal(t, core.ErrInvalidAddress, err)
	})

	t.Run("funds pulled from the repayer", func(t *testing.T) {
		// scenario 6
		borrowerBefore := e.vault.balance(userA)
		repayerBefore := e.vault.balance(repayer)

		event, err := e.ledger.RepayOnBehalf(ctx, repayer, userA, number.Decimal("100"))
		require.NoError(t, err)
		assert.Equal(t, core.EventRepaidOnBehalf, event.Type)
		assert.Equal(t, userA, event.Account)
		assert.Equal(t, repayer, event.Opponent)
		assert.Equal(t, "100", event.Principal.String())
		assert.Equal(t, "5", event.Interest.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, "300", data.BorrowBalance.String())

		assert.Equal(t, borrowerBefore.String(), e.vault.balance(userA).String())
		assert.Equal(t, repayerBefore.Sub(number.Decimal("105")).String(), e.vault.balance(repayer).String())
		e.requireInvariants(t)
	})

	t.Run("capped at outstanding debt", func(t *testing.T) {
		event, err := e.ledger.RepayOnBehalf(ctx, repayer, userA, number.Decimal("10000"))
		require.NoError(t, err)
		assert.Equal(t, "300", event.Principal.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.True(t, data.BorrowBalance.IsZero())
		e.requireInvariants(t)
	})
}

func TestLiquidate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	_, err = e.ledger.Borrow(ctx, userA, number.Decimal("500"))
	require.NoError(t, err)

	t.Run("healthy position", func(t *testing.T) {
		// hf = 1000*1*0.8/500 = 1.6
		_, err := e.ledger.Liquidate(ctx, userB, userA, number.Decimal("100"))
		assert.Equal(t, core.ErrNotLiquidatable, err)
	})

	t.Run("price drop makes position liquidatable", func(t *testing.T) {
		// hf = 1000*0.5*0.8/500 = 0.8
		e.oracle.price = number.Decimal("0.5")

		liquidatorBefore := e.vault.balance(userB)
		event, err := e.ledger.Liquidate(ctx, userB, userA, number.Decimal("100"))
		require.NoError(t, err)
		assert.Equal(t, core.EventLiquidated, event.Type)
		assert.Equal(t, "100", event.Principal.String())
		// 100 / 0.5 * 1.05 = 210 collateral units seized
		assert.Equal(t, "210", event.Amount.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, "400", data.BorrowBalance.String())
		assert.Equal(t, "790", data.DepositBalance.String())

		// liquidator paid 100 debt and received 210 collateral
		assert.Equal(t,
			liquidatorBefore.Sub(number.Decimal("100")).Add(number.Decimal("210")).String(),
			e.vault.balance(userB).String())
		e.requireInvariants(t)
	})

	t.Run("seizure capped by deposit balance", func(t *testing.T) {
		e.oracle.price = number.Decimal("0.1")

		event, err := e.ledger.Liquidate(ctx, userB, userA, number.Decimal("400"))
		require.NoError(t, err)
		// 400 / 0.1 * 1.05 = 4200 > 790 remaining collateral
		assert.Equal(t, "790", event.Amount.String())

		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.True(t, data.DepositBalance.IsZero())
		assert.True(t, data.BorrowBalance.IsZero())
		e.requireInvariants(t)
	})

	t.Run("dead price feed", func(t *testing.T) {
		e.oracle.err = core.ErrInvalidPrice
		defer func() { e.oracle.err = nil }()

		_, err := e.ledger.Liquidate(ctx, userB, userA, number.Decimal("1"))
		assert.Equal(t, core.ErrInvalidPrice, err)
	})
}

func TestGetUserAccountData(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	t.Run("unknown account", func(t *testing.T) {
		data, err := e.ledger.GetUserAccountData(ctx, userB)
		require.NoError(t, err)
		assert.True(t, data.DepositBalance.IsZero())
		assert.True(t, data.BorrowBalance.IsZero())
		assert.True(t, data.AvailableToBorrow.IsZero())
		assert.True(t, data.HealthFactor.Equal(lending.HealthFactorMax))
	})

	_, err := e.ledger.Deposit(ctx, userA, number.Decimal("1000"))
	require.NoError(t, err)
	_, err = e.ledger.Borrow(ctx, userA, number.Decimal("400"))
	require.NoError(t, err)

	t.Run("own headroom binds", func(t *testing.T) {
		data, err := e.ledger.GetUserAccountData(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, "100", data.AvailableToBorrow.String())
		assert.Equal(t, "2", data.HealthFactor.String())
	})

	t.Run("pool liquidity binds", func(t *testing.T) {
		_, err := e.ledger.Deposit(ctx, userB, number.Decimal("2000"))
		require.NoError(t, err)
		_, err = e.ledger.Withdraw(ctx, userA, number.Decimal("1000"))
		require.NoError(t, err)
		_, err = e.ledger.Withdraw(ctx, userB, number.Decimal("1400"))
		require.NoError(t, err)

		// B holds 600 deposit so 300 of headroom, but only 200 cash remains
		liquidity, err := e.ledger.GetAvailableLiquidity(ctx)
		require.NoError(t, err)
		assert.Equal(t, "200", liquidity.String())

		data, err := e.ledger.GetUserAccountData(ctx, userB)
		require.NoError(t, err)
		assert.Equal(t, "200", data.AvailableToBorrow.String())
	})
}

func TestAdminOperations(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	t.Run("update interest rate", func(t *testing.T) {
		event, err := e.ledger.UpdateInterestRate(ctx, owner, 1000)
		require.NoError(t, err)
		assert.Equal(t, core.EventInterestRateUpdated, event.Type)
		assert.EqualValues(t, 1000, event.Rate)

		pool, _ := e.pools.Get(ctx)
		assert.EqualValues(t, 1000, pool.BorrowInterestRate)
	})

	t.Run("rate capped at 30 percent", func(t *testing.T) {
		_, err := e.ledger.UpdateInterestRate(ctx, owner, 3001)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})

	t.Run("non owner rejected", func(t *testing.T) {
		_, err := e.ledger.UpdateInterestRate(ctx, userA, 1000)
		assert.Equal(t, core.ErrUnauthorized, err)

		_, err = e.ledger.SetAuthorizedRepayer(ctx, userA, userB)
		assert.Equal(t, core.ErrUnauthorized, err)
	})

	t.Run("set authorized repayer", func(t *testing.T) {
		_, err := e.ledger.SetAuthorizedRepayer(ctx, owner, userB)
		require.NoError(t, err)

		pool, _ := e.pools.Get(ctx)
		assert.Equal(t, userB, pool.AuthorizedRepayer)
	})

	t.Run("empty repayer rejected", func(t *testing.T) {
		_, err := e.ledger.SetAuthorizedRepayer(ctx, owner, "")
		assert.Equal(t, core.ErrInvalidAddress, err)
	})

	t.Run("transfer ownership", func(t *testing.T) {
		_, err := e.ledger.TransferOwnership(ctx, owner, userA)
		require.NoError(t, err)

		_, err = e.ledger.UpdateInterestRate(ctx, owner, 100)
		assert.Equal(t, core.ErrUnauthorized, err)

		_, err = e.ledger.UpdateInterestRate(ctx, userA, 100)
		require.NoError(t, err)
	})
}

func TestOperationSequenceInvariants(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	type step struct {
		op     string
		caller string
		amount string
	}

	steps := []step{
		{"deposit", userA, "1000"},
		{"deposit", userB, "350.5"},
		{"borrow", userA, "400"},
		{"withdraw", userB, "100"},
		{"repay", userA, "123.45"},
		{"borrow", userB, "125.25"},
		{"deposit", userA, "7.00000001"},
		{"repay", userB, "9999"},
		{"withdraw", userA, "500"},
		{"repay", userA, "9999"},
		{"withdraw", userA, "507.00000001"},
	}

	for _, st := range steps {
		amount := number.Decimal(st.amount)
		var err error
		switch st.op {
		case "deposit":
			_, err = e.ledger.Deposit(ctx, st.caller, amount)
		case "withdraw":
			_, err = e.ledger.Withdraw(ctx, st.caller, amount)
		case "borrow":
			_, err = e.ledger.Borrow(ctx, st.caller, amount)
		case "repay":
			_, err = e.ledger.Repay(ctx, st.caller, amount)
		}
		require.NoError(t, err, "%s %s %s", st.op, st.caller, st.amount)
		e.requireInvariants(t)
	}

	data, err := e.ledger.GetUserAccountData(ctx, userA)
	require.NoError(t, err)
	assert.True(t, data.DepositBalance.IsZero())
	assert.True(t, data.BorrowBalance.IsZero())
}
