package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Pool singleton accounting row: derived totals plus owner-mutable
// configuration. Rates and thresholds are basis points on a 10000 scale.
type Pool struct {
	ID                   uint64          `sql:"PRIMARY_KEY" json:"id"`
	TotalDeposits        decimal.Decimal `sql:"type:decimal(32,8)" json:"total_deposits"`
	TotalBorrows         decimal.Decimal `sql:"type:decimal(32,8)" json:"total_borrows"`
	BorrowInterestRate   int64           `sql:"default:0" json:"borrow_interest_rate"`
	LiquidationThreshold int64           `sql:"default:0" json:"liquidation_threshold"`
	LiquidationBonus     int64           `sql:"default:0" json:"liquidation_bonus"`
	Owner                string          `sql:"size:64" json:"owner"`
	AuthorizedRepayer    string          `sql:"size:64" json:"authorized_repayer"`
	Version              int64           `sql:"default:0" json:"version"`
	CreatedAt            time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// AvailableLiquidity totalDeposits - totalBorrows
func (p *Pool) AvailableLiquidity() decimal.Decimal {
	return p.TotalDeposits.Sub(p.TotalBorrows)
}

// IPoolStore pool store interface
type IPoolStore interface {
	// Init writes the genesis pool row if none exists yet
	Init(ctx context.Context, genesis *Pool) error
	Get(ctx context.Context) (*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}
