package source

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type sourceStore struct {
	db *db.DB
}

// New new trusted source store
func New(db *db.DB) core.ISourceStore {
	return &sourceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Source{})
		if err := tx.AutoMigrate(core.Source{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *sourceStore) Save(ctx context.Context, src *core.Source) error {
	return s.db.Update().
		Where("chain_id = ? AND sender = ?", src.ChainID, src.Sender).
		FirstOrCreate(src).Error
}

func (s *sourceStore) Delete(ctx context.Context, chainID uint64, sender string) error {
	return s.db.Update().
		Where("chain_id = ? AND sender = ?", chainID, sender).
		Delete(core.Source{}).Error
}

func (s *sourceStore) Exists(ctx context.Context, chainID uint64, sender string) (bool, error) {
	var src core.Source
	err := s.db.View().Where("chain_id = ? AND sender = ?", chainID, sender).First(&src).Error
	if store.IsErrNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *sourceStore) All(ctx context.Context) ([]*core.Source, error) {
	var sources []*core.Source
	if err := s.db.View().Find(&sources).Error; err != nil {
		return nil, err
	}

	return sources, nil
}
