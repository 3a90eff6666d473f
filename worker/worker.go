package worker

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running worker
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs onWork on a fixed interval until the context is done.
// The error delay backs off a failing worker without killing it.
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick start tick
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Second
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = 10 * time.Second
	}

	dur := time.Millisecond
	timer := time.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onWork(ctx); err != nil {
				dur = errDelay
			} else {
				dur = delay
			}

			timer.Reset(dur)
		}
	}
}

// CronWorker schedules onWork with a cron spec
type CronWorker struct {
	Spec string
}

// StartCron start the scheduler and block until the context is done
func (w *CronWorker) StartCron(ctx context.Context, onWork func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	c := cron.New()
	if _, err := c.AddFunc(w.Spec, func() {
		if err := onWork(ctx); err != nil {
			log.WithError(err).Errorln("cron work failed")
		}
	}); err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()

	<-c.Stop().Done()
	return ctx.Err()
}
