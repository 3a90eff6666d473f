package vault

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type vaultService struct {
	wallets core.IWalletStore
}

// New new vault service. The vault is the ledger's transfer collaborator:
// it moves the asset between external wallet rows and the custody row.
func New(wallets core.IWalletStore) core.IVaultService {
	return &vaultService{
		wallets: wallets,
	}
}

func (s *vaultService) Pull(ctx context.Context, tx *db.DB, from string, amount decimal.Decimal) error {
	return s.move(ctx, tx, from, core.CustodyAddress, amount)
}

func (s *vaultService) Push(ctx context.Context, tx *db.DB, to string, amount decimal.Decimal) error {
	return s.move(ctx, tx, core.CustodyAddress, to, amount)
}

func (s *vaultService) move(ctx context.Context, tx *db.DB, from, to string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "vault")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	source, err := s.wallets.Find(ctx, from)
	if err != nil {
		return err
	}

	if source.Balance.LessThan(amount) {
		log.Infoln("move denied:", from, "balance", source.Balance, "amount", amount)
		return core.ErrTransferFailed
	}

	target, err := s.wallets.Find(ctx, to)
	if err != nil {
		return err
	}

	source.Balance = source.Balance.Sub(amount)
	if err := s.wallets.Save(ctx, tx, source); err != nil {
		return err
	}

	target.Balance = target.Balance.Add(amount)
	return s.wallets.Save(ctx, tx, target)
}
