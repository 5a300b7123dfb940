package cli

import (
	"github.com/spf13/cobra"
)

// newUserCmd creates the 'user' command group.
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User lookups",
	}

	cmd.AddCommand(newUserGetCmd())

	return cmd
}

func newUserGetCmd() *cobra.Command {
	var (
		identifier     string
		identifierType string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetUser(cmd.Context(), identifier, identifierType)
			})
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "User identifier, username, or id")
	cmd.Flags().StringVar(&identifierType, "identifier-type", "identifier", "How to interpret the identifier: identifier, username, or id")
	cmd.MarkFlagRequired("identifier")

	return cmd
}
