package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to MangaDex",
		Long:  "Authenticate with username or email and store the session tokens in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" && email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if username == "" && email == "" {
				return constants.ErrUsernameRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			config := loadConfig()
			config.SessionToken = ""

			client, err := newClient(config)
			if err != nil {
				return err
			}

			builder := client.Auth().Login().Password(password)
			if username != "" {
				builder.Username(username)
			} else {
				builder.Email(email)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if _, err := req.Send(ctx); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := NewConfigPersister().SaveTokens(ctx, client); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged in successfully")

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address (instead of username)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from MangaDex",
		Long:  "End the session and remove the stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			req, err := client.Auth().Logout().Build()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if _, err := req.Send(ctx); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}

			if err := NewConfigPersister().SaveTokens(ctx, client); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully")

			return nil
		},
	}
}

// NewRefreshCommand creates the refresh command.
func NewRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the session",
		Long:  "Exchange the stored refresh token for a new token pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.RefreshToken == "" {
				return constants.ErrNoRefreshToken
			}

			client, err := newClient(config)
			if err != nil {
				return err
			}

			req, err := client.Auth().Refresh().Token(config.RefreshToken).Build()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if _, err := req.Send(ctx); err != nil {
				return fmt.Errorf("refresh failed: %w", err)
			}

			if err := NewConfigPersister().SaveTokens(ctx, client); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Session refreshed")

			return nil
		},
	}
}

// WhoamiInfo is the output of the whoami command.
type WhoamiInfo struct {
	ID          string   `json:"id"          yaml:"id"`
	Username    string   `json:"username"    yaml:"username"`
	Roles       []string `json:"roles"       yaml:"roles"`
	Permissions int      `json:"permissions" yaml:"permissions"`
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Long:  "Check the stored session and display the account it belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			check, err := client.Auth().Check().Build()
			if err != nil {
				return err
			}

			session, err := check.Send(ctx)
			if err != nil {
				return fmt.Errorf("failed to check session: %w", err)
			}

			if !session.IsAuthenticated {
				return constants.ErrNotLoggedIn
			}

			me, err := client.User().Me().Build()
			if err != nil {
				return err
			}

			user, err := me.Send(ctx)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			info := WhoamiInfo{
				ID:          user.Data.ID.String(),
				Username:    user.Data.Attributes.Username,
				Permissions: len(session.Permissions),
			}

			for _, role := range user.Data.Attributes.Roles {
				info.Roles = append(info.Roles, string(role))
			}

			return render(cmd.OutOrStdout(), outputFormat(), info, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", info.ID)
				_ = table.Append("Username", info.Username)
				_ = table.Append("Roles", strings.Join(info.Roles, ", "))
				_ = table.Append("Permissions", fmt.Sprint(info.Permissions))
			})
		},
	}
}
