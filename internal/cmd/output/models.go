package output

import (
	"io"
	"time"

	"github.com/agentstation/merakiaddr/internal/cmd/table"
	"github.com/agentstation/merakiaddr/internal/meraki"
	"github.com/agentstation/merakiaddr/internal/reconciler"
)

// Printer writes directory objects in a single output format. It also
// serves as the reconciler's Reporter when the operator asked for a
// structured format.
type Printer struct {
	w      io.Writer
	format Format
}

var _ reconciler.Reporter = (*Printer)(nil)

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Organizations prints organizations.
func (p *Printer) Organizations(orgs []meraki.Organization) error {
	if p.format.Tabular() {
		return p.print(table.OrganizationsToTableData(orgs, p.format.Wide()))
	}
	return p.print(nonNil(orgs))
}

// Networks prints the networks of an organization.
func (p *Printer) Networks(_ string, networks []meraki.Network) error {
	if p.format.Tabular() {
		return p.print(table.NetworksToTableData(networks, p.format.Wide()))
	}
	return p.print(nonNil(networks))
}

// Devices prints devices with their current address.
func (p *Printer) Devices(devices []meraki.Device) error {
	if p.format.Tabular() {
		return p.print(table.DevicesToTableData(devices, p.format.Wide()))
	}
	return p.print(nonNil(devices))
}

// Result prints a run summary. Table formats show counts; structured
// formats include the serials.
func (p *Printer) Result(r *reconciler.Result) error {
	if !p.format.Tabular() {
		return p.print(r)
	}

	summary := struct {
		RunID    string `json:"run_id"`
		Network  string `json:"network"`
		Address  string `json:"address"`
		Updated  int    `json:"updated"`
		Declined int    `json:"declined"`
		Elapsed  string `json:"elapsed"`
	}{
		RunID:    r.RunID,
		Network:  r.NetworkID,
		Address:  table.FormatAddress(r.Address),
		Updated:  len(r.Updated),
		Declined: len(r.Declined),
		Elapsed:  r.Duration().Round(time.Millisecond).String(),
	}
	return p.print(summary)
}

func (p *Printer) print(data any) error {
	return NewFormatter(p.format).Format(p.w, data)
}

// nonNil keeps empty listings rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
