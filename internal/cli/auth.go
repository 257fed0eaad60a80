package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/companion-cli/internal/api"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var password, email string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a CareCompanion account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, rootOpts, args[0], password, email, true)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "email address (optional)")

	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and save the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, rootOpts, args[0], password, "", false)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func runAuth(cmd *cobra.Command, rootOpts *RootOptions, username, password, email string, register bool) error {
	a, err := newApp(cmd, rootOpts)
	if err != nil {
		return err
	}

	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	creds := api.Credentials{Username: username, Password: password, Email: email}

	var resp api.TokenResponse
	if register {
		resp, err = a.client.Register(cmd.Context(), creds)
	} else {
		resp, err = a.client.Login(cmd.Context(), creds)
	}
	if err != nil {
		return err
	}

	if err := a.saveSession(resp.Token, resp.Username); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.Username)
	return nil
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			session, err := a.requireSession(time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session expires %s)\n",
				session.Username, session.ExpiresAt.Format("2006-01-02"))
			return nil
		},
	}
}
