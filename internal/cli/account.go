package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/frogworks/frogworks/internal/config"
)

// newAccountCmd creates the 'account' command group.
func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account registration and login",
	}

	cmd.AddCommand(newAccountLoginCmd())
	cmd.AddCommand(newAccountRegisterCmd())

	return cmd
}

func newAccountLoginCmd() *cobra.Command {
	var (
		username string
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and obtain a session id",
		Long: `Log in with username and password. The resulting session id is printed
and, with --save, written to the config file so later commands pick it
up automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			start := time.Now()
			sid, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if save {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg.SessionID = sid
				if err := cfg.Save(cfgFile); err != nil {
					return fmt.Errorf("save session id: %w", err)
				}
				logger.Info().Msg("Session id saved to config")
			}

			return printTimed(elapsed, map[string]string{"session_id": sid})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the session id in the config file")
	cmd.MarkFlagRequired("username")

	return cmd
}

func newAccountRegisterCmd() *cobra.Command {
	var (
		username         string
		name             string
		emailAddress     string
		password         string
		verificationCode int
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long: `Register a new account. The email address must be verified first:
request a code with 'email verification request' and pass it here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			return runTimed(func() (interface{}, error) {
				return client.Register(cmd.Context(), username, name, emailAddress, password, verificationCode)
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&emailAddress, "email-address", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().IntVar(&verificationCode, "email-verification-code", 0, "Code from the verification email")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email-address")
	cmd.MarkFlagRequired("email-verification-code")

	return cmd
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(data), nil
}
