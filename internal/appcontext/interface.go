// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested against Mock.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/merakiaddr/internal/reconciler"
)

// Settings are the directory identifiers and desired address resolved
// from flags, environment and the config file.
type Settings struct {
	OrganizationID string
	NetworkID      string
	DeviceAddress  string
}

// Interface defines the application context interface that commands need.
type Interface interface {
	// Directory returns the Dashboard client, creating it on first use.
	// It fails with a credential error when no API key is configured.
	Directory() (reconciler.Directory, error)

	// Prompter returns the source of operator answers: a readline
	// terminal when stdin is interactive, otherwise a line reader.
	Prompter() (reconciler.Prompter, error)

	// Settings returns the configured identifiers.
	Settings() Settings

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the explicitly requested output format, or ""
	// when none was given.
	OutputFormat() string

	// Stdout is where command output goes.
	Stdout() io.Writer

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
