package price

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})
		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Create(ctx context.Context, price *core.Price) error {
	return s.db.Update().Create(price).Error
}

func (s *priceStore) Latest(ctx context.Context) (*core.Price, error) {
	var price core.Price
	if err := s.db.View().Order("id desc").First(&price).Error; err != nil {
		return nil, err
	}

	return &price, nil
}
