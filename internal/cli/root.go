// Package cli provides the command-line interface for the Frogworks backend.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/frogworks/frogworks/internal/logging"
	"github.com/frogworks/frogworks/internal/version"
)

var (
	// Global flags
	cfgFile   string
	apiURL    string
	sessionID string
	verbose   bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command for the Frogworks CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "frogworks-cli",
		Short: "CLI interface for the Frogworks backend",
		Long: version.AppName + ` CLI ` + version.Version + `
Command-line interface for the Frogworks backend: accounts, sessions,
applications, friends, and wallet.

Most commands require a session id, obtained with 'account login' and
passed via --session-id or stored in the config file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Frogworks API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session-id", "", "Frogworks session id (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newServerCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newEmailCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newApplicationCmd())
	rootCmd.AddCommand(newFriendsCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newIAPCmd())
	rootCmd.AddCommand(newCloudCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
