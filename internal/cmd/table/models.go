// Package table converts directory objects into rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/merakiaddr/internal/meraki"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// OrganizationsToTableData converts organizations to table format.
func OrganizationsToTableData(orgs []meraki.Organization, wide bool) Data {
	headers := []string{"ID", "Name"}
	if wide {
		headers = append(headers, "URL")
	}

	rows := make([][]string, 0, len(orgs))
	for _, org := range orgs {
		row := []string{org.ID, org.Name}
		if wide {
			row = append(row, orDash(org.URL))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// NetworksToTableData converts networks to table format.
func NetworksToTableData(networks []meraki.Network, wide bool) Data {
	headers := []string{"ID", "Name"}
	if wide {
		headers = append(headers, "Organization", "Products", "Time Zone")
	}

	rows := make([][]string, 0, len(networks))
	for _, n := range networks {
		row := []string{n.ID, n.Name}
		if wide {
			row = append(row,
				orDash(n.OrganizationID),
				orDash(strings.Join(n.ProductTypes, ", ")),
				orDash(n.TimeZone),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// DevicesToTableData converts devices to table format. Devices without an
// address show "-".
func DevicesToTableData(devices []meraki.Device, wide bool) Data {
	headers := []string{"Serial", "Name", "Model", "Address"}
	if wide {
		headers = append(headers, "MAC", "Firmware", "Lat", "Lng")
	}

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		row := []string{d.Serial, orDash(d.Name), orDash(d.Model), orDash(FormatAddress(d.Address))}
		if wide {
			row = append(row, orDash(d.MAC), orDash(d.Firmware), FormatCoordinate(d.Lat), FormatCoordinate(d.Lng))
		}
		rows = append(rows, row)
	}

	data := Data{Headers: headers, Rows: rows}
	if wide {
		data.ColumnAlignment = []Align{
			AlignLeft, AlignLeft, AlignLeft, AlignLeft,
			AlignLeft, AlignLeft, AlignRight, AlignRight,
		}
	}
	return data
}

// FormatAddress flattens a multi-line street address onto one line.
func FormatAddress(address string) string {
	address = strings.ReplaceAll(address, "\r", "")
	return strings.ReplaceAll(address, "\n", ", ")
}

// FormatCoordinate formats a latitude or longitude, "-" when unset.
func FormatCoordinate(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
