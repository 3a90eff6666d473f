package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Position 借贷仓位, one per account address, created implicitly on first
// deposit and never deleted.
type Position struct {
	ID             uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Address        string          `sql:"size:64;unique_index:idx_positions_address" json:"address"`
	DepositBalance decimal.Decimal `sql:"type:decimal(32,8)" json:"deposit_balance"`
	BorrowBalance  decimal.Decimal `sql:"type:decimal(32,8)" json:"borrow_balance"`
	Version        int64           `sql:"default:0" json:"version"`
	CreatedAt      time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPositionStore position store interface
type IPositionStore interface {
	// Find returns a zero-balance position for unknown addresses
	Find(ctx context.Context, address string) (*Position, error)
	Save(ctx context.Context, tx *db.DB, position *Position) error
	All(ctx context.Context) ([]*Position, error)
}
