package cli

import (
	"github.com/spf13/cobra"
)

// newFriendsCmd creates the 'friends' command group.
func newFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friends and friend requests",
	}

	cmd.AddCommand(newFriendsListCmd())
	cmd.AddCommand(newFriendsRequestsCmd())
	cmd.AddCommand(newFriendsRequestCmd())
	cmd.AddCommand(newFriendsAcceptCmd())
	cmd.AddCommand(newFriendsInvitesCmd())

	return cmd
}

func newFriendsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your friends",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetFriends(cmd.Context())
			})
		},
	}
}

func newFriendsRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "List pending friend requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetFriendRequests(cmd.Context())
			})
		},
	}
}

func newFriendsRequestCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send a friend request",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				if err := client.SendFriendRequest(cmd.Context(), userID); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "Id of the user to befriend")
	cmd.MarkFlagRequired("user-id")

	return cmd
}

func newFriendsAcceptCmd() *cobra.Command {
	var requestID int

	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept a pending friend request",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				if err := client.AcceptFriendRequest(cmd.Context(), requestID); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}

	cmd.Flags().IntVar(&requestID, "request-id", 0, "Id of the friend request")
	cmd.MarkFlagRequired("request-id")

	return cmd
}

func newFriendsInvitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invites",
		Short: "List pending game invites",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthenticatedAPIClient()
			if err != nil {
				return err
			}
			return runTimed(func() (interface{}, error) {
				return client.GetInvites(cmd.Context())
			})
		},
	}
}
