package pricesync

import (
	"context"
	"time"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const checkpointKey = "pricesync_checkpoint"

// Worker pulls the remote price feed on a schedule and persists each new
// reading for the oracle service to serve.
type Worker struct {
	worker.CronWorker

	symbol    string
	prices    core.IPriceStore
	oracleSrv core.IPriceOracleService
	property  property.Store
}

// New new price sync worker
func New(
	symbol string,
	interval time.Duration,
	priceStr core.IPriceStore,
	oracleSrv core.IPriceOracleService,
	propertyStr property.Store,
) *Worker {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	w := Worker{
		symbol:    symbol,
		prices:    priceStr,
		oracleSrv: oracleSrv,
		property:  propertyStr,
	}
	w.Spec = "@every " + interval.String()

	return &w
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartCron(ctx, w.onWork)
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "pricesync")

	ticker, err := w.oracleSrv.PullPriceTicker(ctx, w.symbol, time.Now())
	if err != nil {
		log.WithError(err).Errorln("pull price ticker")
		return err
	}

	if !ticker.Price.IsPositive() {
		log.Errorln("invalid ticker price:", ticker.Symbol, ticker.Price)
		return nil
	}

	// the feed reports the same tick between updates; skip the write when
	// nothing changed since the checkpoint
	v, err := w.property.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	if v.String() == ticker.Price.String() {
		return nil
	}

	price := core.Price{
		Symbol:    ticker.Symbol,
		Price:     ticker.Price,
		CreatedAt: time.Now(),
	}
	if err := w.prices.Create(ctx, &price); err != nil {
		log.WithError(err).Errorln("prices.Create")
		return err
	}

	if err := w.property.Save(ctx, checkpointKey, ticker.Price.String()); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	log.Infoln("price synced:", ticker.Symbol, ticker.Price)
	return nil
}
