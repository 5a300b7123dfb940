package cli

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/frogworks/frogworks/internal/api"
	"github.com/frogworks/frogworks/internal/config"
)

// newApplicationCmd creates the 'application' command group.
func newApplicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "application",
		Short: "Store application operations",
	}

	cmd.AddCommand(newApplicationCreateCmd())
	cmd.AddCommand(newApplicationGetCmd())
	cmd.AddCommand(newApplicationVersionsCmd())
	cmd.AddCommand(newApplicationDownloadCmd())
	cmd.AddCommand(newApplicationSaleCmd())

	return cmd
}

func newApplicationCreateCmd() *cobra.Command {
	var (
		name               string
		packageName        string
		applicationType    string
		description        string
		releaseDate        string
		earlyAccess        bool
		supportedPlatforms string
		genres             string
		tags               string
		basePrice          float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new store listing (developer accounts only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.CreateApplication(cmd.Context(), api.CreateApplicationParams{
					Name:               name,
					PackageName:        packageName,
					Type:               applicationType,
					Description:        description,
					ReleaseDate:        releaseDate,
					EarlyAccess:        earlyAccess,
					SupportedPlatforms: splitList(supportedPlatforms),
					Genres:             splitList(genres),
					Tags:               splitList(tags),
					BasePrice:          basePrice,
				})
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Application name")
	cmd.Flags().StringVar(&packageName, "package-name", "", "Unique package name, e.g. com.example.game")
	cmd.Flags().StringVar(&applicationType, "application-type", "", "Application type, e.g. game or tool")
	cmd.Flags().StringVar(&description, "description", "", "Store description")
	cmd.Flags().StringVar(&releaseDate, "release-date", "", "Release date")
	cmd.Flags().BoolVar(&earlyAccess, "early-access", false, "Mark the listing as early access")
	cmd.Flags().StringVar(&supportedPlatforms, "supported-platforms", "", "Comma-separated platform list")
	cmd.Flags().StringVar(&genres, "genres", "", "Comma-separated genre list")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tag list")
	cmd.Flags().Float64Var(&basePrice, "base-price", 0, "Base price")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("package-name")
	cmd.MarkFlagRequired("application-type")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("release-date")
	cmd.MarkFlagRequired("supported-platforms")
	cmd.MarkFlagRequired("genres")
	cmd.MarkFlagRequired("tags")
	cmd.MarkFlagRequired("base-price")

	return cmd
}

func newApplicationGetCmd() *cobra.Command {
	var applicationID int

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a store listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetApplication(cmd.Context(), applicationID)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newApplicationVersionsCmd() *cobra.Command {
	var (
		applicationID int
		platform      string
	)

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List released builds of an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetApplicationVersions(cmd.Context(), applicationID, platform)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.Flags().StringVar(&platform, "platform", "", "Filter by platform (defaults to all)")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newApplicationDownloadCmd() *cobra.Command {
	var (
		applicationID int
		versionName   string
		destDir       string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download a released build for this platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}

			start := time.Now()
			versions, err := client.GetApplicationVersions(cmd.Context(), applicationID, runtime.GOOS)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				return fmt.Errorf("no builds of application %d for platform %s", applicationID, runtime.GOOS)
			}

			// Latest build unless a specific version was asked for.
			target := versions[len(versions)-1]
			if versionName != "" {
				found := false
				for _, v := range versions {
					if v.Name == versionName {
						target = v
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("application %d has no version %q for platform %s", applicationID, versionName, runtime.GOOS)
				}
			}

			if destDir == "" {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				destDir = cfg.Installs.Directory
				if destDir == "" {
					destDir = "."
				}
			}

			path, err := client.DownloadApplicationVersion(cmd.Context(), &target, destDir, true)
			if err != nil {
				return err
			}

			return printTimed(time.Since(start), map[string]string{"path": path, "version": target.Name})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.Flags().StringVar(&versionName, "version", "", "Version name (defaults to the latest)")
	cmd.Flags().StringVar(&destDir, "dest", "", "Destination directory (defaults to the configured installs directory)")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

func newApplicationSaleCmd() *cobra.Command {
	var applicationID int

	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Show the active sale for an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetActiveSale(cmd.Context(), applicationID)
			})
		},
	}

	cmd.Flags().IntVar(&applicationID, "application-id", 0, "Application id")
	cmd.MarkFlagRequired("application-id")

	return cmd
}

// splitList parses a comma-separated flag value into its elements.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
