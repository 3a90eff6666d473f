package ledger

import (
	"context"
	"sync"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/pkg/id"
	"lendpool/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	db        *db.DB
	mux       sync.Mutex
	positions core.IPositionStore
	pools     core.IPoolStore
	events    core.IEventStore
	vault     core.IVaultService
	oracle    core.IPriceOracleService
}

// New new ledger service. Mutating calls are serialized by a single mutex
// and applied inside one db transaction, so no caller ever observes a
// half-applied operation and a failed transfer rolls everything back.
func New(
	db *db.DB,
	positionStr core.IPositionStore,
	poolStr core.IPoolStore,
	eventStr core.IEventStore,
	vaultSrv core.IVaultService,
	oracleSrv core.IPriceOracleService,
) core.ILedgerService {
	return &ledgerService{
		db:        db,
		positions: positionStr,
		pools:     poolStr,
		events:    eventStr,
		vault:     vaultSrv,
		oracle:    oracleSrv,
	}
}

// a nil db runs the mutation without an enclosing transaction; memory
// store fakes rely on that in tests
func (s *ledgerService) runTx(fn func(tx *db.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}

	return s.db.Tx(fn)
}

func (s *ledgerService) Deposit(ctx context.Context, caller string, amount decimal.Decimal) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("operation", "deposit")

	if caller == "" {
		return nil, core.ErrInvalidAddress
	}

	amount = amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err := s.runTx(func(tx *db.DB) error {
		position, err := s.positions.Find(ctx, caller)
		if err != nil {
			return err
		}

		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		position.DepositBalance = position.DepositBalance.Add(amount)
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}

		pool.TotalDeposits = pool.TotalDeposits.Add(amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		if err := s.vault.Pull(ctx, tx, caller, amount); err != nil {
			return err
		}

		event = &core.Event{
			TraceID: id.GenTraceID(),
			Type:    core.EventDeposited,
			Account: caller,
			Amount:  amount,
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		log.WithError(err).Infoln("deposit aborted:", caller, amount)
		return nil, err
	}

	return event, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, caller string, amount decimal.Decimal) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("operation", "withdraw")

	if caller == "" {
		return nil, core.ErrInvalidAddress
	}

	amount = amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err := s.runTx(func(tx *db.DB) error {
		position, err := s.positions.Find(ctx, caller)
		if err != nil {
			return err
		}

		if amount.GreaterThan(position.DepositBalance) {
			return core.ErrInsufficientDepositBalance
		}

		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		// pool-wide liquidity only: the caller's own post-withdraw health
		// factor is not re-checked, so a borrower may withdraw collateral
		// out from under their own loan while pool liquidity allows it
		if amount.GreaterThan(pool.AvailableLiquidity()) {
			return core.ErrInsufficientLiquidity
		}

		position.DepositBalance = position.DepositBalance.Sub(amount)
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}

		pool.TotalDeposits = pool.TotalDeposits.Sub(amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		if err := s.vault.Push(ctx, tx, caller, amount); err != nil {
			return err
		}

		event = &core.Event{
			TraceID: id.GenTraceID(),
			Type:    core.EventWithdrawn,
			Account: caller,
			Amount:  amount,
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		log.WithError(err).Infoln("withdraw aborted:", caller, amount)
		return nil, err
	}

	return event, nil
}

func (s *ledgerService) Borrow(ctx context.Context, caller string, amount decimal.Decimal) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("operation", "borrow")

	if caller == "" {
		return nil, core.ErrInvalidAddress
	}

	amount = amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	// borrowing requires a live price reading even though collateral and
	// debt share one asset; a dead feed halts new borrows
	if _, err := s.oracle.LatestPrice(ctx); err != nil {
		return nil, err
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err := s.runTx(func(tx *db.DB) error {
		position, err := s.positions.Find(ctx, caller)
		if err != nil {
			return err
		}

		borrowed := position.BorrowBalance.Add(amount)
		if borrowed.GreaterThan(lending.MaxBorrow(position.DepositBalance)) {
			return core.ErrInsufficientCollateral
		}

		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		if amount.GreaterThan(pool.AvailableLiquidity()) {
			return core.ErrInsufficientLiquidity
		}

		position.BorrowBalance = borrowed
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}

		pool.TotalBorrows = pool.TotalBorrows.Add(amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		if err := s.vault.Push(ctx, tx, caller, amount); err != nil {
			return err
		}

		event = &core.Event{
			TraceID: id.GenTraceID(),
			Type:    core.EventBorrowed,
			Account: caller,
			Amount:  amount,
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		log.WithError(err).Infoln("borrow aborted:", caller, amount)
		return nil, err
	}

	return event, nil
}

func (s *ledgerService) Repay(ctx context.Context, caller string, amount decimal.Decimal) (*core.Event, error) {
	if caller == "" {
		return nil, core.ErrInvalidAddress
	}

	return s.repay(ctx, caller, caller, amount, core.EventRepaid)
}

func (s *ledgerService) RepayOnBehalf(ctx context.Context, caller, borrower string, amount decimal.Decimal) (*core.Event, error) {
	if borrower == "" {
		return nil, core.ErrInvalidAddress
	}

	pool, err := s.pools.Get(ctx)
	if err != nil {
		return nil, err
	}

	if caller == "" || caller != pool.AuthorizedRepayer {
		return nil, core.ErrUnauthorized
	}

	return s.repay(ctx, caller, borrower, amount, core.EventRepaidOnBehalf)
}

// repay applies min(amount, borrowBalance) to the borrower's principal and
// pulls principal plus flat interest from the payer. Excess beyond the cap
// is never pulled.
func (s *ledgerService) repay(ctx context.Context, payer, borrower string, amount decimal.Decimal, eventType core.EventType) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("operation", eventType.String())

	amount = amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err := s.runTx(func(tx *db.DB) error {
		position, err := s.positions.Find(ctx, borrower)
		if err != nil {
			return err
		}

		if !position.BorrowBalance.IsPositive() {
			return core.ErrNoOutstandingBorrow
		}

		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		principal := number.Min(amount, position.BorrowBalance)
		interest := lending.Interest(principal, pool.BorrowInterestRate)

		position.BorrowBalance = position.BorrowBalance.Sub(principal)
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}

		pool.TotalBorrows = pool.TotalBorrows.Sub(principal)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		if err := s.vault.Pull(ctx, tx, payer, principal.Add(interest)); err != nil {
			return err
		}

		event = &core.Event{
			TraceID:   id.GenTraceID(),
			Type:      eventType,
			Account:   borrower,
			Amount:    principal.Add(interest),
			Principal: principal,
			Interest:  interest,
		}
		if payer != borrower {
			event.Opponent = payer
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		log.WithError(err).Infoln("repay aborted:", borrower, amount)
		return nil, err
	}

	return event, nil
}

func (s *ledgerService) Liquidate(ctx context.Context, caller, borrower string, amount decimal.Decimal) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("operation", "liquidate")

	if caller == "" || borrower == "" {
		return nil, core.ErrInvalidAddress
	}

	amount = amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	price, err := s.oracle.LatestPrice(ctx)
	if err != nil {
		return nil, err
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err = s.runTx(func(tx *db.DB) error {
		position, err := s.positions.Find(ctx, borrower)
		if err != nil {
			return err
		}

		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		healthFactor := lending.HealthFactor(
			position.DepositBalance,
			position.BorrowBalance,
			price,
			pool.LiquidationThreshold,
		)
		if !lending.Liquidatable(healthFactor) {
			return core.ErrNotLiquidatable
		}

		principal := number.Min(amount, position.BorrowBalance)
		seized := number.Min(
			lending.SeizeCollateral(principal, price, pool.LiquidationBonus),
			position.DepositBalance,
		)

		position.BorrowBalance = position.BorrowBalance.Sub(principal)
		position.DepositBalance = position.DepositBalance.Sub(seized)
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}

		pool.TotalBorrows = pool.TotalBorrows.Sub(principal)
		pool.TotalDeposits = pool.TotalDeposits.Sub(seized)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		if err := s.vault.Pull(ctx, tx, caller, principal); err != nil {
			return err
		}

		if err := s.vault.Push(ctx, tx, caller, seized); err != nil {
			return err
		}

		event = &core.Event{
			TraceID:   id.GenTraceID(),
			Type:      core.EventLiquidated,
			Account:   borrower,
			Opponent:  caller,
			Amount:    seized,
			Principal: principal,
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		log.WithError(err).Infoln("liquidate aborted:", borrower, amount)
		return nil, err
	}

	return event, nil
}

func (s *ledgerService) GetUserAccountData(ctx context.Context, address string) (*core.AccountData, error) {
	if address == "" {
		return nil, core.ErrInvalidAddress
	}

	position, err := s.positions.Find(ctx, address)
	if err != nil {
		return nil, err
	}

	pool, err := s.pools.Get(ctx)
	if err != nil {
		return nil, err
	}

	available := number.NonNegative(number.Min(
		lending.MaxBorrow(position.DepositBalance).Sub(position.BorrowBalance),
		pool.AvailableLiquidity(),
	))

	healthFactor := lending.HealthFactorMax
	if position.BorrowBalance.IsPositive() {
		price, err := s.oracle.LatestPrice(ctx)
		if err != nil {
			return nil, err
		}

		healthFactor = lending.HealthFactor(
			position.DepositBalance,
			position.BorrowBalance,
			price,
			pool.LiquidationThreshold,
		)
	}

	return &core.AccountData{
		Address:           address,
		DepositBalance:    position.DepositBalance,
		BorrowBalance:     position.BorrowBalance,
		AvailableToBorrow: available,
		HealthFactor:      healthFactor,
	}, nil
}

func (s *ledgerService) GetAvailableLiquidity(ctx context.Context) (decimal.Decimal, error) {
	pool, err := s.pools.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return pool.AvailableLiquidity(), nil
}

func (s *ledgerService) Pool(ctx context.Context) (*core.Pool, error) {
	return s.pools.Get(ctx)
}

func (s *ledgerService) UpdateInterestRate(ctx context.Context, caller string, bps int64) (*core.Event, error) {
	if bps < 0 || bps > lending.MaxBorrowRateBps {
		return nil, core.ErrInvalidAmount
	}

	return s.updatePool(ctx, caller, func(pool *core.Pool) *core.Event {
		pool.BorrowInterestRate = bps
		return &core.Event{
			TraceID: id.GenTraceID(),
			Type:    core.EventInterestRateUpdated,
			Account: caller,
			Rate:    bps,
		}
	})
}

func (s *ledgerService) SetAuthorizedRepayer(ctx context.Context, caller, repayer string) (*core.Event, error) {
	if repayer == "" {
		return nil, core.ErrInvalidAddress
	}

	return s.updatePool(ctx, caller, func(pool *core.Pool) *core.Event {
		pool.AuthorizedRepayer = repayer
		return &core.Event{
			TraceID:  id.GenTraceID(),
			Type:     core.EventRepayerUpdated,
			Account:  caller,
			Opponent: repayer,
		}
	})
}

func (s *ledgerService) TransferOwnership(ctx context.Context, caller, owner string) (*core.Event, error) {
	if owner == "" {
		return nil, core.ErrInvalidAddress
	}

	return s.updatePool(ctx, caller, func(pool *core.Pool) *core.Event {
		pool.Owner = owner
		return &core.Event{
			TraceID:  id.GenTraceID(),
			Type:     core.EventOwnershipTransferred,
			Account:  owner,
			Opponent: caller,
		}
	})
}

func (s *ledgerService) updatePool(ctx context.Context, caller string, apply func(pool *core.Pool) *core.Event) (*core.Event, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var event *core.Event
	err := s.runTx(func(tx *db.DB) error {
		pool, err := s.pools.Get(ctx)
		if err != nil {
			return err
		}

		if caller == "" || caller != pool.Owner {
			return core.ErrUnauthorized
		}

		event = apply(pool)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}
