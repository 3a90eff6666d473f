package lending

import (
	"github.com/shopspring/decimal"
)

var (
	// BpsBase basis points denominator, 10000 = 100%
	BpsBase = decimal.NewFromInt(10000)
	// MaxBorrowRateBps borrow interest rate cap, 3000 = 30%
	MaxBorrowRateBps int64 = 3000
	// MaxPrecision amounts are truncated to 8 decimal places
	MaxPrecision int32 = 8
	// HealthFactorMax sentinel returned for positions with no borrow
	HealthFactorMax = decimal.NewFromInt(1_000_000_000)

	two = decimal.NewFromInt(2)
	one = decimal.NewFromInt(1)
)

// MaxBorrow the collateralization limit: half the deposit, rounded down.
// A borrower can never owe more than MaxBorrow of their own deposit.
func MaxBorrow(deposit decimal.Decimal) decimal.Decimal {
	return deposit.Div(two).Truncate(MaxPrecision)
}

// Interest flat charge on the repaid principal, not time-weighted:
// interest = principal * rate_bps / 10000
func Interest(principal decimal.Decimal, rateBps int64) decimal.Decimal {
	return principal.Mul(decimal.NewFromInt(rateBps)).Div(BpsBase).Truncate(MaxPrecision)
}

// HealthFactor (deposit * price * threshold_bps / 10000) / borrow.
// The liquidation threshold is folded into the numerator, so a position is
// liquidatable exactly when the result drops below one.
func HealthFactor(deposit, borrow, price decimal.Decimal, thresholdBps int64) decimal.Decimal {
	if !borrow.IsPositive() {
		return HealthFactorMax
	}

	collateral := deposit.Mul(price).Mul(decimal.NewFromInt(thresholdBps)).Div(BpsBase)
	return collateral.Div(borrow).Truncate(MaxPrecision)
}

// Liquidatable strictly below one
func Liquidatable(healthFactor decimal.Decimal) bool {
	return healthFactor.LessThan(one)
}

// SeizeCollateral repaid debt converted to collateral units at the oracle
// price, scaled by the liquidation bonus:
// seize = repaid / price * (10000 + bonus_bps) / 10000
func SeizeCollateral(repaid, price decimal.Decimal, bonusBps int64) decimal.Decimal {
	factor := BpsBase.Add(decimal.NewFromInt(bonusBps)).Div(BpsBase)
	return repaid.Div(price).Mul(factor).Truncate(MaxPrecision)
}
