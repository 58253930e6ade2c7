// Package directory provides read-only listing commands for organizations,
// networks and devices.
package directory

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/merakiaddr/internal/appcontext"
	"github.com/agentstation/merakiaddr/internal/cmd/output"
	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// NewOrganizationsCommand creates the organizations command.
func NewOrganizationsCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "organizations",
		Aliases: []string{"orgs"},
		GroupID: "directory",
		Short:   "List organizations visible to the API key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			dir, err := app.Directory()
			if err != nil {
				return err
			}

			orgs, err := dir.ListOrganizations(ctx)
			if err != nil {
				return errors.WrapDirectory("list", "organizations", "", err)
			}
			return printer(app).Organizations(orgs)
		},
	}
}

// NewNetworksCommand creates the networks command.
func NewNetworksCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "networks",
		Aliases: []string{"nets"},
		GroupID: "directory",
		Short:   "List networks of an organization",
		Example: `  merakiaddr networks --org 549236`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orgID := app.Settings().OrganizationID
			if orgID == "" {
				return &errors.ConfigIncompleteError{
					Field: "organization ID",
					Hint:  "pass --org or set MERAKI_ORG_ID",
				}
			}
			ctx := logging.WithOrganization(logging.WithLogger(cmd.Context(), app.Logger()), orgID)

			dir, err := app.Directory()
			if err != nil {
				return err
			}

			networks, err := dir.ListOrganizationNetworks(ctx, orgID)
			if err != nil {
				return errors.WrapDirectory("list", "networks", orgID, err)
			}
			return printer(app).Networks(orgID, networks)
		},
	}
}

// NewDevicesCommand creates the devices command.
func NewDevicesCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "devices",
		GroupID: "directory",
		Short:   "List devices of a network with their current address",
		Example: `  merakiaddr devices --network L_646829496481105433
  merakiaddr devices -o wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			networkID := app.Settings().NetworkID
			if networkID == "" {
				return &errors.ConfigIncompleteError{
					Field: "network ID",
					Hint:  "pass --network or set MERAKI_NETWORK_ID",
				}
			}
			ctx := logging.WithNetwork(logging.WithLogger(cmd.Context(), app.Logger()), networkID)

			dir, err := app.Directory()
			if err != nil {
				return err
			}

			devices, err := dir.ListNetworkDevices(ctx, networkID)
			if err != nil {
				return errors.WrapDirectory("list", "devices", networkID, err)
			}
			return printer(app).Devices(devices)
		},
	}
}

func printer(app appcontext.Interface) *output.Printer {
	return output.NewPrinter(app.Stdout(), output.DetectFormat(app.OutputFormat()))
}
