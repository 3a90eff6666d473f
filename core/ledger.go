package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountData read projection of one position
type AccountData struct {
	Address           string          `json:"address"`
	DepositBalance    decimal.Decimal `json:"deposit_balance"`
	BorrowBalance     decimal.Decimal `json:"borrow_balance"`
	AvailableToBorrow decimal.Decimal `json:"available_to_borrow"`
	HealthFactor      decimal.Decimal `json:"health_factor"`
}

// ILedgerService the lending ledger. Every mutating call is validated
// against the pool invariants, applied atomically, and reported with a
// persisted domain event. The caller identity is always an explicit
// address argument.
type ILedgerService interface {
	Deposit(ctx context.Context, caller string, amount decimal.Decimal) (*Event, error)
	Withdraw(ctx context.Context, caller string, amount decimal.Decimal) (*Event, error)
	Borrow(ctx context.Context, caller string, amount decimal.Decimal) (*Event, error)
	Repay(ctx context.Context, caller string, amount decimal.Decimal) (*Event, error)
	RepayOnBehalf(ctx context.Context, caller, borrower string, amount decimal.Decimal) (*Event, error)
	Liquidate(ctx context.Context, caller, borrower string, amount decimal.Decimal) (*Event, error)

	GetUserAccountData(ctx context.Context, address string) (*AccountData, error)
	GetAvailableLiquidity(ctx context.Context) (decimal.Decimal, error)
	Pool(ctx context.Context) (*Pool, error)

	UpdateInterestRate(ctx context.Context, caller string, bps int64) (*Event, error)
	SetAuthorizedRepayer(ctx context.Context, caller, repayer string) (*Event, error)
	TransferOwnership(ctx context.Context, caller, owner string) (*Event, error)
}
