package cmd

import (
	"sync"

	"lendpool/worker"
	"lendpool/worker/pricesync"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lendpool job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		priceStore := providePriceStore(database)
		propertyStore := providePropertyStore(database)
		oracleService := provideOracleService(priceStore)

		workers := []worker.Worker{
			pricesync.New(cfg.Oracle.Symbol, cfg.Oracle.Interval, priceStore, oracleService, propertyStore),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				_ = worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
