package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRegisterCmd(a *app) *cobra.Command {
	var (
		username      string
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the notes server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := a.credentialsInput(cmd, username, passwordStdin)
			if err != nil {
				return err
			}

			user, err := a.api.Register(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if err := a.creds.Clear(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Run 'stickynotes login -u %s' to log in.\n", user.Username, user.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username to register")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var (
		username      string
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := a.credentialsInput(cmd, username, passwordStdin)
			if err != nil {
				return err
			}

			pair, err := a.api.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			a.creds.APIURL = a.api.BaseURL()
			a.creds.Username = username
			a.creds.Access = pair.Access
			a.creds.Refresh = pair.Refresh
			if err := a.creds.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget the stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.creds.RefreshToken() == "" && !a.creds.Authorized() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			if refresh := a.creds.RefreshToken(); refresh != "" {
				if err := a.api.Logout(cmd.Context(), refresh); err != nil {
					a.logger.Warn("server logout failed, clearing local session anyway", zap.Error(err))
				}
			}
			if err := a.creds.Clear(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) credentialsInput(cmd *cobra.Command, username string, passwordStdin bool) (string, string, error) {
	var err error
	if username == "" {
		if username, err = a.prompt(cmd, "Username: "); err != nil {
			return "", "", err
		}
	}
	if username == "" {
		return "", "", errors.New("username is required")
	}

	password, err := a.readPassword(cmd, passwordStdin)
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", errors.New("password is required")
	}
	return username, password, nil
}
