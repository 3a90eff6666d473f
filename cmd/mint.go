package cmd

import (
	"lendpool/pkg/number"

	"github.com/spf13/cobra"
)

// mint credits an external wallet row so local deployments have funded
// accounts to exercise the pool with
var mintCmd = &cobra.Command{
	Use:     "mint <address> <amount>",
	Aliases: []string{"faucet"},
	Short:   "credit an external wallet balance",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		amount := number.Decimal(args[1])
		if !amount.IsPositive() {
			cmd.PrintErrln("invalid amount:", args[1])
			return
		}

		database := provideDatabase()
		defer database.Close()

		walletStore := provideWalletStore(database)
		wallet, err := walletStore.Find(ctx, args[0])
		if err != nil {
			cmd.PrintErrln("find wallet error:", err)
			return
		}

		wallet.Balance = wallet.Balance.Add(amount)
		if err := walletStore.Save(ctx, nil, wallet); err != nil {
			cmd.PrintErrln("save wallet error:", err)
			return
		}

		cmd.Println("minted", amount, "to", args[0], "balance", wallet.Balance)
	},
}

func init() {
	rootCmd.AddCommand(mintCmd)
}
