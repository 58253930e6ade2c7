package reconciler

//go:generate mockgen -destination=mock_reconciler.go -package=reconciler github.com/agentstation/merakiaddr/internal/reconciler Directory,Prompter,Reporter

import (
	"context"

	"github.com/agentstation/merakiaddr/internal/meraki"
)

// Directory is the device directory the reconciler reads from and writes to.
// *meraki.Client implements it.
type Directory interface {
	ListOrganizations(ctx context.Context) ([]meraki.Organization, error)
	ListOrganizationNetworks(ctx context.Context, orgID string) ([]meraki.Network, error)
	ListNetworkDevices(ctx context.Context, networkID string) ([]meraki.Device, error)
	GetDevice(ctx context.Context, serial string) (*meraki.Device, error)
	UpdateDeviceAddress(ctx context.Context, serial, address string) (*meraki.Device, error)
}

// Prompter asks the operator a question and returns one raw line of input
// without its line terminator. Input that has ended returns
// errors.ErrPromptClosed.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// Reporter presents the choices listed when an identifier is missing from
// the configuration.
type Reporter interface {
	Organizations(orgs []meraki.Organization) error
	Networks(orgID string, networks []meraki.Network) error
}

var _ Directory = (*meraki.Client)(nil)
