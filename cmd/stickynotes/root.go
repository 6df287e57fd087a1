package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"stickynotes/client"
	"stickynotes/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultAPIURL = "http://localhost:8000"
	envAPIURL     = "STICKYNOTES_API_URL"
)

var errLoginRequired = errors.New("you are not logged in, run 'stickynotes login' first")

// app carries the flags and the per-run state shared by every command.
type app struct {
	apiURL    string
	credsPath string
	verbose   bool
	now       func() time.Time

	logger *zap.Logger
	creds  *client.Credentials
	api    *client.Client
	input  *bufio.Reader
}

func newApp() *app {
	return &app{now: time.Now, logger: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "stickynotes",
		Short: "Sticky notes in your terminal",
		Long: `stickynotes keeps short colored notes on a notes server.
Register once, log in, then list, search, create, edit and delete your notes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "notes server URL (default $"+envAPIURL+", then the URL used at login, then "+defaultAPIURL+")")
	root.PersistentFlags().StringVar(&a.credsPath, "credentials", "", "credentials file (default <user config dir>/stickynotes/credentials.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newListCmd(a),
		newViewCmd(a),
		newNewCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newSearchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		a.logger.Warn("failed to load .env", zap.Error(err))
	}

	path := a.credsPath
	if path == "" {
		if path, err = client.DefaultCredentialsPath(); err != nil {
			return err
		}
	}
	if a.creds, err = client.LoadCredentials(path); err != nil {
		return err
	}

	baseURL := a.resolveAPIURL()
	a.logger.Debug("using notes server", zap.String("url", baseURL), zap.String("credentials", path))
	a.api = client.New(baseURL, client.WithTokenSource(a.creds), client.WithLogger(a.logger))
	a.input = bufio.NewReader(cmd.InOrStdin())
	return nil
}

// resolveAPIURL applies flag, environment, stored login, default, in that order.
func (a *app) resolveAPIURL() string {
	if a.apiURL != "" {
		return a.apiURL
	}
	if a.creds.APIURL != "" {
		return utils.GetEnvAsString(envAPIURL, a.creds.APIURL)
	}
	return utils.GetEnvAsString(envAPIURL, defaultAPIURL)
}

// requireAuth refuses to run without a session and refreshes an expired access
// token before the command makes its first call.
func (a *app) requireAuth(ctx context.Context) error {
	if !a.creds.Authorized() && a.creds.RefreshToken() == "" {
		return errLoginRequired
	}
	if !a.creds.AccessExpired(a.now()) {
		return nil
	}
	if a.creds.RefreshToken() == "" {
		return errLoginRequired
	}

	a.logger.Debug("access token expired, refreshing")
	access, err := a.api.Refresh(ctx, a.creds.RefreshToken())
	if err != nil {
		a.logger.Debug("refresh failed", zap.Error(err))
		if client.IsUnauthorized(err) {
			return errLoginRequired
		}
		return err
	}
	return a.creds.SetAccessToken(access)
}

// protected wraps a command body that needs a logged-in user.
func (a *app) protected(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.requireAuth(cmd.Context()); err != nil {
			return err
		}
		err := run(cmd, args)
		if client.IsUnauthorized(err) {
			return errLoginRequired
		}
		return err
	}
}
