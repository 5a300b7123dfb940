package cli

import (
	"github.com/spf13/cobra"
)

// newEmailCmd creates the 'email' command group.
func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email verification",
	}

	verification := &cobra.Command{
		Use:   "verification",
		Short: "Request and check email verification codes",
	}
	verification.AddCommand(newEmailVerificationRequestCmd())
	verification.AddCommand(newEmailVerificationCheckCmd())

	cmd.AddCommand(verification)

	return cmd
}

func newEmailVerificationRequestCmd() *cobra.Command {
	var emailAddress string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send a verification code to an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				if err := client.RequestEmailVerification(cmd.Context(), emailAddress); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}

	cmd.Flags().StringVar(&emailAddress, "email-address", "", "Email address to verify")
	cmd.MarkFlagRequired("email-address")

	return cmd
}

func newEmailVerificationCheckCmd() *cobra.Command {
	var (
		emailAddress     string
		verificationCode int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a verification code against an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				verified, err := client.CheckEmailVerification(cmd.Context(), emailAddress, verificationCode)
				if err != nil {
					return nil, err
				}
				return map[string]bool{"success": verified}, nil
			})
		},
	}

	cmd.Flags().StringVar(&emailAddress, "email-address", "", "Email address being verified")
	cmd.Flags().IntVar(&verificationCode, "verification-code", 0, "Code from the verification email")
	cmd.MarkFlagRequired("email-address")
	cmd.MarkFlagRequired("verification-code")

	return cmd
}
