package cli

import (
	"github.com/spf13/cobra"
)

// newIAPCmd creates the 'iap' command group.
func newIAPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iap",
		Short: "In-application purchases",
	}

	cmd.AddCommand(newIAPListCmd())
	cmd.AddCommand(newIAPRecordsCmd())
	cmd.AddCommand(newIAPAckCmd())

	return cmd
}

func newIAPListCmd() *cobra.Command {
	var applicationID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the IAPs defined for an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetIAPs(cmd.Context(), applicationID)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newIAPRecordsCmd() *cobra.Command {
	var applicationID int

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List your IAP records for an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetIAPRecords(cmd.Context(), applicationID)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newIAPAckCmd() *cobra.Command {
	var recordID int

	cmd := &cobra.Command{
		Use:   "ack",
		Short: "Acknowledge an IAP record as consumed",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				if err := client.AcknowledgeIAPRecord(cmd.Context(), recordID); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}

	cmd.Flags().IntVar(&recordID, "record-id", 0, "IAP record id")
	cmd.MarkFlagRequired("record-id")

	return cmd
}
