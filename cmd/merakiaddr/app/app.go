// Package app wires configuration, logging and the Dashboard client into
// the merakiaddr command tree.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/merakiaddr/internal/appcontext"
	"github.com/agentstation/merakiaddr/internal/meraki"
	"github.com/agentstation/merakiaddr/internal/reconciler"
	"github.com/agentstation/merakiaddr/internal/transport"
	"github.com/agentstation/merakiaddr/pkg/constants"
	"github.com/agentstation/merakiaddr/pkg/errors"
)

// App holds the resolved configuration and lazily created dependencies of
// a single invocation.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdin  io.Reader
	stdout io.Writer

	mu        sync.Mutex
	directory reconciler.Directory
	prompter  reconciler.Prompter
	closers   []io.Closer
}

// New creates an App with configuration loaded from the environment,
// .env files and the default config file.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the output format requested by flag or config.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Stdout returns the writer commands print to.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Settings returns the configured identifiers and desired address.
func (a *App) Settings() appcontext.Settings {
	return appcontext.Settings{
		OrganizationID: a.config.OrganizationID,
		NetworkID:      a.config.NetworkID,
		DeviceAddress:  a.config.DeviceAddress,
	}
}

// Directory returns the Dashboard client, creating it on first use.
func (a *App) Directory() (reconciler.Directory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.directory != nil {
		return a.directory, nil
	}

	opts := []meraki.Option{
		meraki.WithBaseURL(a.config.BaseURL),
		meraki.WithTransportOptions(
			transport.WithTimeout(a.config.HTTPTimeout),
			transport.WithMaxRetries(a.config.MaxRetries),
			transport.WithUserAgent(constants.UserAgent+"/"+a.version),
		),
	}
	if a.config.LegacyAuth {
		opts = append(opts, meraki.WithLegacyAuth())
	}

	client, err := meraki.NewClient(a.config.APIKey, opts...)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().Str("base_url", client.BaseURL()).Msg("Dashboard client ready")
	a.directory = client
	return client, nil
}

// Prompter returns a readline prompter when stdin is a terminal and a
// line reader otherwise.
func (a *App) Prompter() (reconciler.Prompter, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.prompter != nil {
		return a.prompter, nil
	}

	if f, ok := a.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		rp, err := reconciler.NewReadlinePrompter()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rp)
		a.prompter = rp
		return rp, nil
	}

	a.prompter = reconciler.NewLinePrompter(a.stdin, a.stdout)
	return a.prompter, nil
}

// Shutdown releases the terminal and any other resources held by the app.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	closers := a.closers
	a.closers = nil
	a.mu.Unlock()

	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithDirectory sets the directory instead of building a Dashboard client.
func WithDirectory(dir reconciler.Directory) Option {
	return func(a *App) error {
		a.directory = dir
		return nil
	}
}

// WithIO sets the streams used for prompts and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.stdin = in
		a.stdout = out
		return nil
	}
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
