package cli

import (
	"github.com/spf13/cobra"
)

// newSessionCmd creates the 'session' command group.
func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management",
	}

	cmd.AddCommand(newSessionAuthenticateCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionAuthenticateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authenticate",
		Short: "Validate the configured session id",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.AuthenticateSession(cmd.Context())
			})
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	var targetSessionID int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Log out the current session, or a specific one",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				var err error
				if cmd.Flags().Changed("id") {
					err = client.DeleteSpecificSession(cmd.Context(), targetSessionID)
				} else {
					err = client.DeleteSession(cmd.Context())
				}
				// Scripted callers only check the success flag here.
				return map[string]bool{"success": err == nil}, nil
			})
		},
	}

	cmd.Flags().IntVar(&targetSessionID, "id", 0, "Numeric id of the session to delete (defaults to the current one)")

	return cmd
}
