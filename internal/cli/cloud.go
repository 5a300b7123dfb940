package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// newCloudCmd creates the 'cloud' command group.
func newCloudCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloud",
		Short: "Per-application cloud save data",
	}

	cmd.AddCommand(newCloudGetCmd())
	cmd.AddCommand(newCloudSetCmd())

	return cmd
}

func newCloudGetCmd() *cobra.Command {
	var applicationID int

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch your cloud data for an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetCloudData(cmd.Context(), applicationID)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newCloudSetCmd() *cobra.Command {
	var (
		applicationID int
		data          string
		file          string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace your cloud data for an application",
		Long: `Replace your cloud data for an application. The data is a JSON value,
given inline with --data or read from a file (or stdin with '-') via
--file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}

			payload := []byte(data)
			if file != "" {
				if file == "-" {
					payload, err = io.ReadAll(os.Stdin)
				} else {
					payload, err = os.ReadFile(file)
				}
				if err != nil {
					return fmt.Errorf("read cloud data: %w", err)
				}
			}
			if !json.Valid(payload) {
				return fmt.Errorf("cloud data is not valid JSON")
			}

			return runTimed(func() (interface{}, error) {
				if err := client.SetCloudData(cmd.Context(), applicationID, payload); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.Flags().StringVar(&data, "data", "", "JSON value to store")
	cmd.Flags().StringVar(&file, "file", "", "File containing the JSON value ('-' for stdin)")
	cmd.MarkFlagRequired("application-id")

	return cmd
}
