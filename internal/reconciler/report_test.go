package reconciler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/merakiaddr/internal/meraki"
)

func deviceWithAddress(serial, address string) *meraki.Device {
	return &meraki.Device{Serial: serial, Address: address}
}

func TestTextReporter(t *testing.T) {
	t.Run("organizations", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := NewTextReporter(buf).Organizations([]meraki.Organization{
			{ID: "549236", Name: "DevNet Sandbox"},
			{ID: "681155", Name: "Branch Offices"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"Organization ID is empty, here is a list of organizations available to API-key\n"+
				"Organization name: DevNet Sandbox ID: 549236\n"+
				"Organization name: Branch Offices ID: 681155\n",
			buf.String())
	})

	t.Run("networks", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := NewTextReporter(buf).Networks("549236", []meraki.Network{
			{ID: "L_646829496481105433", Name: "HQ Campus"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"Network ID empty, here is a list of networks in organization\n"+
				"Network name: HQ Campus Network ID: L_646829496481105433\n",
			buf.String())
	})

	t.Run("no networks", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, NewTextReporter(buf).Networks("549236", nil))
		assert.Equal(t, "Network ID empty, here is a list of networks in organization\n", buf.String())
	})
}
