package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized wrong caller for a gated entry point
	ErrUnauthorized ErrorCode = 100001
	// ErrInvalidAddress zero/empty address where an account is required
	ErrInvalidAddress ErrorCode = 100002

	// ErrInvalidAmount zero or otherwise malformed quantity
	ErrInvalidAmount ErrorCode = 100101
	// ErrInsufficientDepositBalance withdraw amount over deposit balance
	ErrInsufficientDepositBalance ErrorCode = 100102
	// ErrInsufficientCollateral borrow over the collateralization limit
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrInsufficientLiquidity amount over totalDeposits - totalBorrows
	ErrInsufficientLiquidity ErrorCode = 100104
	// ErrNoOutstandingBorrow repay with zero borrow balance
	ErrNoOutstandingBorrow ErrorCode = 100105
	// ErrNotLiquidatable health factor at/above the liquidation threshold
	ErrNotLiquidatable ErrorCode = 100106
	// ErrInvalidPrice oracle price missing, stale or non-positive
	ErrInvalidPrice ErrorCode = 100107
	// ErrTransferFailed propagated from the transfer collaborator
	ErrTransferFailed ErrorCode = 100108
	// ErrUntrustedSource relay message from an untrusted chain/sender pair
	ErrUntrustedSource ErrorCode = 100109
)

var errorNames = map[ErrorCode]string{
	ErrUnknown:                    "unknown",
	ErrUnauthorized:               "unauthorized",
	ErrInvalidAddress:             "invalid_address",
	ErrInvalidAmount:              "invalid_amount",
	ErrInsufficientDepositBalance: "insufficient_deposit_balance",
	ErrInsufficientCollateral:     "insufficient_collateral",
	ErrInsufficientLiquidity:      "insufficient_liquidity",
	ErrNoOutstandingBorrow:        "no_outstanding_borrow",
	ErrNotLiquidatable:            "not_liquidatable",
	ErrInvalidPrice:               "invalid_price",
	ErrTransferFailed:             "transfer_failed",
	ErrUntrustedSource:            "untrusted_source",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

// Name stable machine-checkable reason, callers branch on this or on the code
func (e ErrorCode) Name() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return errorNames[ErrUnknown]
}

func (e ErrorCode) Error() string {
	return e.Name()
}
