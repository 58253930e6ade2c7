package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/merakiaddr/internal/cmd/table"
	"github.com/agentstation/merakiaddr/internal/meraki"
	"github.com/agentstation/merakiaddr/internal/reconciler"
)

var testDevices = []meraki.Device{
	{Serial: "Q2XX-1111-2222", Model: "MR46"},
	{Serial: "Q2XX-3333-4444", Model: "MS120-8", Address: "123 Main St"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"", "", false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTableFormatter(t *testing.T) {
	t.Run("table data", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewFormatter(FormatTable).Format(&buf, table.Data{
			Headers: []string{"Serial", "Address"},
			Rows:    [][]string{{"Q2XX-3333-4444", "123 Main St"}},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Q2XX-3333-4444")
		assert.Contains(t, buf.String(), "123 Main St")
	})

	t.Run("struct becomes property table", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewFormatter(FormatTable).Format(&buf, struct {
			RunID  string   `json:"run_id"`
			Serial []string `json:"serials"`
			hidden string
		}{RunID: "abc", Serial: []string{"A", "B"}})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Run Id")
		assert.Contains(t, buf.String(), "A, B")
	})

	t.Run("other values fall back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"a": 1}))
		assert.JSONEq(t, `{"a":1}`, buf.String())
	})
}

func TestPrinterDevices(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatJSON).Devices(testDevices))

		var got []meraki.Device
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, testDevices, got)
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatJSON).Devices(nil))
		assert.JSONEq(t, `[]`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatYAML).Devices(testDevices))
		assert.Contains(t, buf.String(), "Q2XX-3333-4444")
		assert.Contains(t, buf.String(), "123 Main St")
	})

	t.Run("wide table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatWide).Devices(testDevices))
		assert.Contains(t, buf.String(), "MS120-8")
	})
}

func TestPrinterReporter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	require.NoError(t, p.Organizations([]meraki.Organization{{ID: "549236", Name: "DevNet Sandbox"}}))
	assert.JSONEq(t, `[{"id":"549236","name":"DevNet Sandbox"}]`, buf.String())

	buf.Reset()
	require.NoError(t, p.Networks("549236", []meraki.Network{{ID: "N_1", OrganizationID: "549236", Name: "HQ"}}))
	assert.JSONEq(t, `[{"id":"N_1","organizationId":"549236","name":"HQ"}]`, buf.String())
}

func TestPrinterResult(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	result := &reconciler.Result{
		RunID:      "run-1",
		NetworkID:  "N_1",
		Address:    "456 Oak Ave",
		Updated:    []string{"Q2XX-1111-2222", "Q2XX-3333-4444"},
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
	}

	t.Run("table shows counts", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable).Result(result))
		assert.Contains(t, buf.String(), "run-1")
		assert.Contains(t, buf.String(), "1.5s")
		assert.NotContains(t, buf.String(), "Q2XX-1111-2222")
	})

	t.Run("json has serials", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatJSON).Result(result))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "run-1", got["run_id"])
		assert.Len(t, got["updated"], 2)
	})
}
