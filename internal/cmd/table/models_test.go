package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/merakiaddr/internal/meraki"
)

func TestDevicesToTableData(t *testing.T) {
	lat := 37.4180951010362
	devices := []meraki.Device{
		{Serial: "Q2XX-1111-2222", Model: "MR46"},
		{Serial: "Q2XX-3333-4444", Name: "Lobby AP", Address: "123 Main St\nSuite 4", Lat: &lat},
	}

	t.Run("narrow", func(t *testing.T) {
		data := DevicesToTableData(devices, false)
		assert.Equal(t, []string{"Serial", "Name", "Model", "Address"}, data.Headers)
		require.Len(t, data.Rows, 2)
		assert.Equal(t, []string{"Q2XX-1111-2222", "-", "MR46", "-"}, data.Rows[0])
		assert.Equal(t, []string{"Q2XX-3333-4444", "Lobby AP", "-", "123 Main St, Suite 4"}, data.Rows[1])
		assert.Empty(t, data.ColumnAlignment)
	})

	t.Run("wide", func(t *testing.T) {
		data := DevicesToTableData(devices, true)
		assert.Len(t, data.Headers, 8)
		assert.Len(t, data.ColumnAlignment, 8)
		assert.Equal(t, "37.418095", data.Rows[1][6])
		assert.Equal(t, "-", data.Rows[1][7])
	})
}

func TestOrganizationsToTableData(t *testing.T) {
	orgs := []meraki.Organization{{ID: "549236", Name: "DevNet Sandbox"}}

	data := OrganizationsToTableData(orgs, false)
	assert.Equal(t, []string{"ID", "Name"}, data.Headers)
	assert.Equal(t, [][]string{{"549236", "DevNet Sandbox"}}, data.Rows)

	wide := OrganizationsToTableData(orgs, true)
	assert.Equal(t, [][]string{{"549236", "DevNet Sandbox", "-"}}, wide.Rows)
}

func TestNetworksToTableData(t *testing.T) {
	networks := []meraki.Network{{
		ID:             "L_646829496481105433",
		OrganizationID: "549236",
		Name:           "HQ Campus",
		ProductTypes:   []string{"appliance", "wireless"},
	}}

	data := NetworksToTableData(networks, true)
	assert.Equal(t, []string{"ID", "Name", "Organization", "Products", "Time Zone"}, data.Headers)
	assert.Equal(t, []string{"L_646829496481105433", "HQ Campus", "549236", "appliance, wireless", "-"}, data.Rows[0])
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "", FormatAddress(""))
	assert.Equal(t, "1 Infinite Loop, Cupertino", FormatAddress("1 Infinite Loop\r\nCupertino"))
}
