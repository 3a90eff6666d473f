package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceDecimals fixed fractional scale of oracle readings
const PriceDecimals int32 = 8

// Price one persisted oracle reading
type Price struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Symbol    string          `sql:"size:20" json:"symbol"`
	Price     decimal.Decimal `sql:"type:decimal(20,8)" json:"price"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// PriceTicker price ticker pulled from the remote feed
type PriceTicker struct {
	Provider string          `json:"provider,omitempty"`
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Create(ctx context.Context, price *Price) error
	Latest(ctx context.Context) (*Price, error)
}

// IPriceOracleService price oracle service interface
type IPriceOracleService interface {
	// LatestPrice returns the most recent reading; fails with ErrInvalidPrice
	// when the reading is missing, stale or non-positive.
	LatestPrice(ctx context.Context) (decimal.Decimal, error)
	PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*PriceTicker, error)
}
