package reconciler

import (
	"fmt"
	"io"

	"github.com/agentstation/merakiaddr/internal/meraki"
)

// TextReporter prints one line per organization or network.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Organizations implements Reporter.
func (t *TextReporter) Organizations(orgs []meraki.Organization) error {
	fmt.Fprintln(t.w, "Organization ID is empty, here is a list of organizations available to API-key")
	for _, org := range orgs {
		if _, err := fmt.Fprintf(t.w, "Organization name: %s ID: %s\n", org.Name, org.ID); err != nil {
			return err
		}
	}
	return nil
}

// Networks implements Reporter.
func (t *TextReporter) Networks(_ string, networks []meraki.Network) error {
	fmt.Fprintln(t.w, "Network ID empty, here is a list of networks in organization")
	for _, n := range networks {
		if _, err := fmt.Fprintf(t.w, "Network name: %s Network ID: %s\n", n.Name, n.ID); err != nil {
			return err
		}
	}
	return nil
}
