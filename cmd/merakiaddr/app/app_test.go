package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

func newTestApp(t *testing.T, stdin string, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	clearEnv(t)
	t.Setenv("LOG_OUTPUT", "discard")

	out := &bytes.Buffer{}
	opts = append([]Option{WithIO(strings.NewReader(stdin), out)}, opts...)
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app, out
}

// fakeDashboard serves a network with one unaddressed and one addressed
// device and records PUT bodies.
type fakeDashboard struct {
	mu      sync.Mutex
	updates map[string]string
	auth    []string
}

func (f *fakeDashboard) handler() http.Handler {
	devices := map[string]string{
		"Q2XX-1111-2222": "",
		"Q2XX-3333-4444": "123 Main St",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		_, _ = io.WriteString(w, `[{"id":"549236","name":"DevNet Sandbox"}]`)
	})
	mux.HandleFunc("GET /api/v1/networks/N_1/devices", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		_, _ = io.WriteString(w, `[{"serial":"Q2XX-1111-2222","address":""},{"serial":"Q2XX-3333-4444","address":"123 Main St"}]`)
	})
	mux.HandleFunc("GET /api/v1/devices/{serial}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		addr, ok := devices[r.PathValue("serial")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errors":["Device not found"]}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"serial": r.PathValue("serial"), "address": addr})
	})
	mux.HandleFunc("PUT /api/v1/devices/{serial}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		var body struct {
			Address string `json:"address"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.updates[r.PathValue("serial")] = body.Address
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"serial": r.PathValue("serial"), "address": body.Address})
	})
	return mux
}

func (f *fakeDashboard) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.Header.Get("Authorization"))
}

func (f *fakeDashboard) updated(serial string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	addr, ok := f.updates[serial]
	return addr, ok
}

func (f *fakeDashboard) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.auth...)
}

func startDashboard(t *testing.T) (*fakeDashboard, string) {
	t.Helper()
	f := &fakeDashboard{updates: map[string]string{}}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return f, srv.URL + "/api/v1"
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t, "")

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_DirectoryRequiresKey verifies a missing key fails before any request.
func TestApp_DirectoryRequiresKey(t *testing.T) {
	app, _ := newTestApp(t, "")

	_, err := app.Directory()
	if !errors.Is(err, errors.ErrAPIKeyRequired) {
		t.Fatalf("Directory() error = %v, want ErrAPIKeyRequired", err)
	}
}

// TestApp_DirectorySingleton verifies Directory() returns the same client.
func TestApp_DirectorySingleton(t *testing.T) {
	app, _ := newTestApp(t, "")
	app.config.APIKey = "secret"

	d1, err := app.Directory()
	if err != nil {
		t.Fatalf("Directory() failed: %v", err)
	}
	d2, err := app.Directory()
	if err != nil {
		t.Fatalf("Directory() failed on second call: %v", err)
	}
	if d1 != d2 {
		t.Error("Directory() returned different instances")
	}
}

// TestApp_PrompterNonTerminal verifies piped input uses a line prompter.
func TestApp_PrompterNonTerminal(t *testing.T) {
	app, _ := newTestApp(t, "y\n")

	p, err := app.Prompter()
	if err != nil {
		t.Fatalf("Prompter() failed: %v", err)
	}
	answer, err := p.Prompt(context.Background(), "(y/n) ")
	if err != nil || answer != "y" {
		t.Errorf("Prompt() = %q, %v; want y", answer, err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

// TestExecute_Run drives the default command against a fake Dashboard.
func TestExecute_Run(t *testing.T) {
	dashboard, baseURL := startDashboard(t)
	app, out := newTestApp(t, "maybe\ny\n")

	err := app.Execute(context.Background(), []string{
		"--api-key", "secret",
		"--base-url", baseURL,
		"--org", "549236",
		"--network", "N_1",
		"--address", "456 Oak Ave",
		"-o", "json",
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v\n%s", err, out.String())
	}

	want := map[string]string{"Q2XX-1111-2222": "456 Oak Ave", "Q2XX-3333-4444": "456 Oak Ave"}
	for serial, addr := range want {
		if got, _ := dashboard.updated(serial); got != addr {
			t.Errorf("update for %s = %q, want %q", serial, got, addr)
		}
	}
	for _, auth := range dashboard.requests() {
		if auth != "Bearer secret" {
			t.Errorf("Authorization = %q, want Bearer secret", auth)
		}
	}

	for _, s := range []string{
		"Device Q2XX-3333-4444 already has an address:\n123 Main St\n",
		`Answer must be "y" or "n"`,
		`"run_id"`,
	} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output missing %q:\n%s", s, out.String())
		}
	}
}

// TestExecute_RunDeclined verifies "n" leaves the addressed device alone.
func TestExecute_RunDeclined(t *testing.T) {
	dashboard, baseURL := startDashboard(t)
	app, _ := newTestApp(t, "n\n")

	err := app.Execute(context.Background(), []string{
		"run",
		"--api-key", "secret", "--base-url", baseURL,
		"--org", "549236", "--network", "N_1", "--address", "456 Oak Ave",
		"-o", "json",
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if _, ok := dashboard.updated("Q2XX-3333-4444"); ok {
		t.Error("declined device was updated")
	}
	if got, _ := dashboard.updated("Q2XX-1111-2222"); got != "456 Oak Ave" {
		t.Error("unaddressed device was not updated")
	}
}

// TestExecute_MissingOrganization verifies the guided exit.
func TestExecute_MissingOrganization(t *testing.T) {
	dashboard, baseURL := startDashboard(t)
	app, out := newTestApp(t, "")

	err := app.Execute(context.Background(), []string{"--api-key", "secret", "--base-url", baseURL})
	if !errors.IsConfigIncomplete(err) {
		t.Fatalf("Execute() error = %v, want configuration incomplete", err)
	}
	if !strings.Contains(out.String(), "Organization name: DevNet Sandbox ID: 549236") {
		t.Errorf("organizations not listed:\n%s", out.String())
	}
	if _, ok := dashboard.updated("Q2XX-1111-2222"); ok {
		t.Error("devices modified during discovery")
	}
}

// TestExecute_MissingKey verifies no request is made without a key.
func TestExecute_MissingKey(t *testing.T) {
	dashboard, baseURL := startDashboard(t)
	app, _ := newTestApp(t, "")

	err := app.Execute(context.Background(), []string{"organizations", "--base-url", baseURL})
	if !errors.IsAPIKeyError(err) {
		t.Fatalf("Execute() error = %v, want credential error", err)
	}
	if n := len(dashboard.requests()); n != 0 {
		t.Errorf("%d requests made without a key", n)
	}
}

// TestExecute_InvalidFormat verifies the format flag is validated.
func TestExecute_InvalidFormat(t *testing.T) {
	app, _ := newTestApp(t, "")

	if err := app.Execute(context.Background(), []string{"version", "-o", "xml"}); err == nil {
		t.Fatal("Execute() accepted -o xml")
	}
}

// TestExecute_Version verifies the version subcommand output.
func TestExecute_Version(t *testing.T) {
	app, out := newTestApp(t, "")

	if err := app.Execute(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "merakiaddr version 1.0.0\n") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

// TestExecute_ConfiguresDefaultLogger verifies resolved flags reach the
// package default logger used by code without a context logger.
func TestExecute_ConfiguresDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	app, _ := newTestApp(t, "")
	if err := app.Execute(context.Background(), []string{"version", "--log-level", "error"}); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if got := logging.Default().GetLevel().String(); got != "error" {
		t.Errorf("default logger level = %s, want error", got)
	}
	if app.Logger() != logging.Default() {
		t.Error("app logger is not the configured default")
	}
}
