package views

import (
	"lendpool/core"

	"github.com/shopspring/decimal"
)

// Pool pool view
type Pool struct {
	core.Pool
	AvailableLiquidity decimal.Decimal `json:"available_liquidity"`
	UtilizationRate    decimal.Decimal `json:"utilization_rate"`
}

// NewPool build the pool view
func NewPool(pool *core.Pool) *Pool {
	view := Pool{
		Pool:               *pool,
		AvailableLiquidity: pool.AvailableLiquidity(),
	}

	if pool.TotalDeposits.IsPositive() {
		view.UtilizationRate = pool.TotalBorrows.Div(pool.TotalDeposits).Truncate(8)
	}

	return &view
}
