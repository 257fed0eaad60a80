package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/carecompanion/companion-cli/internal/api"
	"github.com/carecompanion/companion-cli/internal/auth"
	"github.com/carecompanion/companion-cli/internal/challenge"
	"github.com/carecompanion/companion-cli/internal/config"
	"github.com/carecompanion/companion-cli/internal/logging"
)

// app bundles the wired collaborators one command invocation needs. Each
// invocation is one interaction: it builds its own client and store, acts, and
// exits.
type app struct {
	cfg     config.Config
	cfgPath string
	logger  *slog.Logger
	client  *api.Client
	store   *challenge.Store
}

func newApp(cmd *cobra.Command, opts *RootOptions) (*app, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if opts.JSONLog {
		logger = logging.NewLogger("companion")
	} else {
		logger = logging.NewCLILogger(cmd.ErrOrStderr(), opts.Verbose)
	}
	client := api.NewClient(cfg.BaseURL, cfg.Token, api.WithLogger(logger))

	return &app{
		cfg:     cfg,
		cfgPath: path,
		logger:  logger,
		client:  client,
		store:   challenge.NewStore(client, logger),
	}, nil
}

// requireSession ensures a usable token is saved before an authenticated call.
// An expired token would only bounce off the backend with a 401, so it is
// reported up front with a clearer message.
func (a *app) requireSession(now time.Time) (auth.Session, error) {
	session, err := auth.Inspect(a.cfg.Token)
	if err != nil {
		return auth.Session{}, fmt.Errorf("%w (run `companion login` first)", err)
	}
	if session.Expired(now) {
		return auth.Session{}, fmt.Errorf("session for %s expired, run `companion login` again", session.Username)
	}
	return session, nil
}

// saveSession persists a fresh token next to the rest of the config.
func (a *app) saveSession(token, username string) error {
	a.cfg.Token = token
	a.cfg.Username = username
	return config.Save(a.cfgPath, a.cfg)
}
