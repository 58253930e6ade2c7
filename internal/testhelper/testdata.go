// Package testhelper provides utilities for managing testdata files in
// API client tests.
package testhelper

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// LoadTestdata loads a testdata file from the caller's testdata directory.
func LoadTestdata(t *testing.T, filename string) []byte {
	t.Helper()

	testdataPath := filepath.Join("testdata", filename)

	data, err := os.ReadFile(testdataPath) //nolint:gosec // Test file paths are controlled
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", testdataPath, err)
	}

	return data
}

// LoadJSON loads and unmarshals JSON from a testdata file.
func LoadJSON(t *testing.T, filename string, v any) {
	t.Helper()

	if err := json.Unmarshal(LoadTestdata(t, filename), v); err != nil {
		t.Fatalf("Failed to unmarshal JSON from testdata file %s: %v", filename, err)
	}
}

// ServeTestdata returns a handler that replies with the contents of a
// testdata file as JSON.
func ServeTestdata(t *testing.T, filename string) http.HandlerFunc {
	t.Helper()

	data := LoadTestdata(t, filename)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}
