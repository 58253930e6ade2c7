package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/merakiaddr/internal/reconciler"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	DirectoryFunc    func() (reconciler.Directory, error)
	PrompterFunc     func() (reconciler.Prompter, error)
	SettingsFunc     func() Settings
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	Out              io.Writer
	VersionFunc      func() string
}

// Directory returns a directory using the mock function or nil.
func (m *Mock) Directory() (reconciler.Directory, error) {
	if m.DirectoryFunc != nil {
		return m.DirectoryFunc()
	}
	return nil, nil
}

// Prompter returns a prompter using the mock function or nil.
func (m *Mock) Prompter() (reconciler.Prompter, error) {
	if m.PrompterFunc != nil {
		return m.PrompterFunc()
	}
	return nil, nil
}

// Settings returns settings using the mock function or empty settings.
func (m *Mock) Settings() Settings {
	if m.SettingsFunc != nil {
		return m.SettingsFunc()
	}
	return Settings{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns the format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Stdout returns Out, or io.Discard when unset.
func (m *Mock) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return io.Discard
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
