package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frogworks/frogworks/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the client configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"api_url":            cfg.APIURL,
				"session_id":         cfg.SessionID,
				"installs_directory": cfg.Installs.Directory,
			})
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		newAPIURL     string
		newSessionID  string
		newInstallDir string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("api-url") {
				cfg.APIURL = newAPIURL
				changed = true
			}
			if cmd.Flags().Changed("session-id") {
				cfg.SessionID = newSessionID
				changed = true
			}
			if cmd.Flags().Changed("installs-directory") {
				cfg.Installs.Directory = newInstallDir
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to set; pass at least one of --api-url, --session-id, --installs-directory")
			}

			if err := cfg.Save(cfgFile); err != nil {
				return err
			}
			return printJSON(map[string]bool{"success": true})
		},
	}

	cmd.Flags().StringVar(&newAPIURL, "api-url", "", "Server base URL")
	cmd.Flags().StringVar(&newSessionID, "session-id", "", "Session id to store")
	cmd.Flags().StringVar(&newInstallDir, "installs-directory", "", "Directory for installed applications")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
