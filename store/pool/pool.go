package pool

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
)

// the pool is a singleton row
const poolID = 1

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.IPoolStore {
	return &poolStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Pool{})
		if err := tx.AutoMigrate(core.Pool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *poolStore) Init(ctx context.Context, genesis *core.Pool) error {
	genesis.ID = poolID
	return s.db.Update().Where("id = ?", poolID).FirstOrCreate(genesis).Error
}

func (s *poolStore) Get(ctx context.Context) (*core.Pool, error) {
	var pool core.Pool
	if err := s.db.View().Where("id = ?", poolID).First(&pool).Error; err != nil {
		return nil, err
	}

	return &pool, nil
}

func (s *poolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	if tx == nil {
		tx = s.db
	}

	version := pool.Version
	pool.Version++
	// map form so totals updated to zero are not skipped as blank fields
	update := tx.Update().Model(core.Pool{}).
		Where("id = ? AND version = ?", poolID, version).
		Updates(map[string]interface{}{
			"total_deposits":        pool.TotalDeposits,
			"total_borrows":         pool.TotalBorrows,
			"borrow_interest_rate":  pool.BorrowInterestRate,
			"liquidation_threshold": pool.LiquidationThreshold,
			"liquidation_bonus":     pool.LiquidationBonus,
			"owner":                 pool.Owner,
			"authorized_repayer":    pool.AuthorizedRepayer,
			"version":               pool.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
