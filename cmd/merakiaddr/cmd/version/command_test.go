package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/merakiaddr/internal/appcontext"
)

func TestVersionCommand(t *testing.T) {
	app := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}
	cmd := NewCommand(app)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "merakiaddr version 1.2.3\n")
	assert.Contains(t, buf.String(), "built by: test\n")
}
