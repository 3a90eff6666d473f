package wallet

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.IWalletStore {
	return &walletStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Wallet{})
		if err := tx.AutoMigrate(core.Wallet{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) Find(ctx context.Context, address string) (*core.Wallet, error) {
	var wallet core.Wallet
	err := s.db.View().Where("address = ?", address).First(&wallet).Error
	if store.IsErrNotFound(err) {
		return &core.Wallet{Address: address}, nil
	}
	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

func (s *walletStore) Save(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	if tx == nil {
		tx = s.db
	}

	if wallet.ID == 0 {
		return tx.Update().Create(wallet).Error
	}

	version := wallet.Version
	wallet.Version++
	update := tx.Update().Model(core.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, version).
		Updates(map[string]interface{}{
			"balance": wallet.Balance,
			"version": wallet.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
