package cmd

import (
	"lendpool/core"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// owner-gated pool maintenance; --from must match the pool owner recorded
// in the database, the ledger rejects anything else
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "owner operations on the pool",
}

var setRateCmd = &cobra.Command{
	Use:   "set-rate <bps>",
	Short: "update the borrow interest rate in basis points",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledgerService := provideAdminLedger()

		from, _ := cmd.Flags().GetString("from")
		event, err := ledgerService.UpdateInterestRate(cmd.Context(), from, cast.ToInt64(args[0]))
		if err != nil {
			cmd.PrintErrln("set-rate error:", err)
			return
		}

		cmd.Println("interest rate updated, trace:", event.TraceID)
	},
}

var setRepayerCmd = &cobra.Command{
	Use:   "set-repayer <address>",
	Short: "update the authorized repayer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledgerService := provideAdminLedger()

		from, _ := cmd.Flags().GetString("from")
		event, err := ledgerService.SetAuthorizedRepayer(cmd.Context(), from, args[0])
		if err != nil {
			cmd.PrintErrln("set-repayer error:", err)
			return
		}

		cmd.Println("authorized repayer updated, trace:", event.TraceID)
	},
}

var transferOwnerCmd = &cobra.Command{
	Use:   "transfer-owner <address>",
	Short: "transfer pool ownership",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledgerService := provideAdminLedger()

		from, _ := cmd.Flags().GetString("from")
		event, err := ledgerService.TransferOwnership(cmd.Context(), from, args[0])
		if err != nil {
			cmd.PrintErrln("transfer-owner error:", err)
			return
		}

		cmd.Println("ownership transferred, trace:", event.TraceID)
	},
}

var addSourceCmd = &cobra.Command{
	Use:   "add-source <chain-id> <sender>",
	Short: "trust a relay chain/sender pair",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		relayService := provideAdminRelay()

		from, _ := cmd.Flags().GetString("from")
		if err := relayService.AddTrustedSource(cmd.Context(), from, cast.ToUint64(args[0]), args[1]); err != nil {
			cmd.PrintErrln("add-source error:", err)
			return
		}

		cmd.Println("source trusted:", args[0], args[1])
	},
}

var removeSourceCmd = &cobra.Command{
	Use:   "remove-source <chain-id> <sender>",
	Short: "revoke a relay chain/sender pair",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		relayService := provideAdminRelay()

		from, _ := cmd.Flags().GetString("from")
		if err := relayService.RemoveTrustedSource(cmd.Context(), from, cast.ToUint64(args[0]), args[1]); err != nil {
			cmd.PrintErrln("remove-source error:", err)
			return
		}

		cmd.Println("source revoked:", args[0], args[1])
	},
}

func provideAdminLedger() core.ILedgerService {
	database := provideDatabase()

	positionStore := providePositionStore(database)
	poolStore := providePoolStore(database)
	eventStore := provideEventStore(database)
	walletStore := provideWalletStore(database)
	priceStore := providePriceStore(database)

	return provideLedgerService(
		database,
		positionStore,
		poolStore,
		eventStore,
		provideVaultService(walletStore),
		provideOracleService(priceStore),
	)
}

func provideAdminRelay() core.IRelayService {
	database := provideDatabase()

	return provideRelayService(
		provideAdminLedger(),
		provideSourceStore(database),
		provideEventStore(database),
	)
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.PersistentFlags().String("from", "", "calling owner address")

	adminCmd.AddCommand(setRateCmd)
	adminCmd.AddCommand(setRepayerCmd)
	adminCmd.AddCommand(transferOwnerCmd)
	adminCmd.AddCommand(addSourceCmd)
	adminCmd.AddCommand(removeSourceCmd)
}
