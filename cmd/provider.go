package cmd

import (
	"context"

	"lendpool/core"
	ledgerservice "lendpool/service/ledger"
	oracleservice "lendpool/service/oracle"
	relayservice "lendpool/service/relay"
	vaultservice "lendpool/service/vault"
	"lendpool/store/event"
	"lendpool/store/pool"
	"lendpool/store/position"
	"lendpool/store/price"
	"lendpool/store/source"
	"lendpool/store/wallet"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}

func provideWalletStore(db *db.DB) core.IWalletStore {
	return wallet.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideSourceStore(db *db.DB) core.ISourceStore {
	return source.New(db)
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

// ------------------service------------------------------------

func provideVaultService(walletStr core.IWalletStore) core.IVaultService {
	return vaultservice.New(walletStr)
}

func provideOracleService(priceStr core.IPriceStore) core.IPriceOracleService {
	return oracleservice.New(oracleservice.Config{
		EndPoint: cfg.Oracle.EndPoint,
		Symbol:   cfg.Oracle.Symbol,
		MaxAge:   cfg.Oracle.MaxAge,
	}, priceStr)
}

func provideLedgerService(
	db *db.DB,
	positionStr core.IPositionStore,
	poolStr core.IPoolStore,
	eventStr core.IEventStore,
	vaultSrv core.IVaultService,
	oracleSrv core.IPriceOracleService,
) core.ILedgerService {
	// the genesis row is written once; restarts are no-ops
	if err := poolStr.Init(context.Background(), &core.Pool{
		BorrowInterestRate:   cfg.Pool.BorrowInterestRate,
		LiquidationThreshold: cfg.Pool.LiquidationThreshold,
		LiquidationBonus:     cfg.Pool.LiquidationBonus,
		Owner:                cfg.Pool.Owner,
		AuthorizedRepayer:    cfg.Pool.AuthorizedRepayer,
	}); err != nil {
		panic(err)
	}

	return ledgerservice.New(db, positionStr, poolStr, eventStr, vaultSrv, oracleSrv)
}

func provideRelayService(
	ledgerSrv core.ILedgerService,
	sourceStr core.ISourceStore,
	eventStr core.IEventStore,
) core.IRelayService {
	return relayservice.New(relayservice.Config{
		Repayer: cfg.Relay.Repayer,
	}, ledgerSrv, sourceStr, eventStr)
}
