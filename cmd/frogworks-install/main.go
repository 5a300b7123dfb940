// Frogworks Install - registers or removes the Frogworks installation.
//
// Windows only: writes the registry keys locating the installed binaries
// and registers the frogworks:// URI scheme so link clicks reach the
// daemon. Must be run elevated.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frogworks/frogworks/internal/installer"
	"github.com/frogworks/frogworks/internal/logging"
)

func main() {
	logger := logging.NewDefaultCLILogger()

	rootCmd := &cobra.Command{
		Use:          "frogworks-install",
		Short:        "Register or remove the Frogworks installation",
		SilenceUsage: true,
	}

	var installDir string
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Write the installation registry keys and URI scheme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if installDir == "" {
				return fmt.Errorf("--directory is required")
			}
			if err := installer.Install(installDir); err != nil {
				return err
			}
			logger.Info().Str("directory", installDir).Msg("Frogworks installation registered")
			return nil
		},
	}
	installCmd.Flags().StringVarP(&installDir, "directory", "d", "", "Installation directory containing the Frogworks binaries")

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the installation registry keys and URI scheme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := installer.Uninstall(); err != nil {
				return err
			}
			logger.Info().Msg("Frogworks installation removed")
			return nil
		},
	}

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
