package position

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.IPositionStore {
	return &positionStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Position{})
		if err := tx.AutoMigrate(core.Position{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *positionStore) Find(ctx context.Context, address string) (*core.Position, error) {
	var position core.Position
	err := s.db.View().Where("address = ?", address).First(&position).Error
	if store.IsErrNotFound(err) {
		return &core.Position{Address: address}, nil
	}
	if err != nil {
		return nil, err
	}

	return &position, nil
}

func (s *positionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	if tx == nil {
		tx = s.db
	}

	if position.ID == 0 {
		return tx.Update().Create(position).Error
	}

	version := position.Version
	position.Version++
	// map form so balances updated to zero are not skipped as blank fields
	update := tx.Update().Model(core.Position{}).
		Where("id = ? AND version = ?", position.ID, version).
		Updates(map[string]interface{}{
			"deposit_balance": position.DepositBalance,
			"borrow_balance":  position.BorrowBalance,
			"version":         position.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *positionStore) All(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}
