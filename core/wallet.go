package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// CustodyAddress reserved wallet address holding the pool's custodied asset
const CustodyAddress = "lendpool.custody"

// Wallet external asset balance of one address. The wallet table is the
// balance book the vault service moves value through; the row under
// CustodyAddress holds the pool's custodied asset including collected
// interest.
type Wallet struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Address   string          `sql:"size:64;unique_index:idx_wallets_address" json:"address"`
	Balance   decimal.Decimal `sql:"type:decimal(32,8)" json:"balance"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IWalletStore wallet store interface
type IWalletStore interface {
	Find(ctx context.Context, address string) (*Wallet, error)
	Save(ctx context.Context, tx *db.DB, wallet *Wallet) error
}

// IVaultService transfer collaborator: moves the asset between an external
// address and the ledger custody. Both calls run inside the ledger's
// transaction so a failed move rolls the whole operation back.
type IVaultService interface {
	// Pull moves amount from the address into custody
	Pull(ctx context.Context, tx *db.DB, from string, amount decimal.Decimal) error
	// Push moves amount from custody out to the address
	Push(ctx context.Context, tx *db.DB, to string, amount decimal.Decimal) error
}
