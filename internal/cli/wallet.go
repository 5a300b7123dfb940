package cli

import (
	"github.com/spf13/cobra"
)

// newWalletCmd creates the 'wallet' command group.
func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Balance, purchases, and transactions",
	}

	cmd.AddCommand(newWalletPurchasesCmd())
	cmd.AddCommand(newWalletTransactionsCmd())
	cmd.AddCommand(newWalletDepositsCmd())

	return cmd
}

func newWalletPurchasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "List your purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetPurchases(cmd.Context())
			})
		},
	}
}

func newWalletTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List your transaction ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetTransactions(cmd.Context())
			})
		},
	}
}

func newWalletDepositsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposits",
		Short: "List your balance deposits",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetDeposits(cmd.Context())
			})
		},
	}
}
