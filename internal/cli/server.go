package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// newServerCmd creates the 'server' command group.
func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Backend server operations",
	}

	cmd.AddCommand(newServerPingCmd())

	return cmd
}

func newServerPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				raw, err := client.Ping(cmd.Context())
				if err != nil {
					return nil, err
				}
				return json.RawMessage(raw), nil
			})
		},
	}
}
