// Package reconcile provides the commands that write device addresses.
package reconcile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/merakiaddr/internal/appcontext"
	"github.com/agentstation/merakiaddr/internal/cmd/output"
	"github.com/agentstation/merakiaddr/internal/reconciler"
	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// NewRunCommand creates the run command.
func NewRunCommand(app appcontext.Interface) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Set the configured address on every device in the network",
		Long: `Run lists the devices of the configured network and sets the
configured address on each one, in order.

Devices with no address are updated without asking. For a device that
already has an address you are asked to confirm with "y" or "n"; any
other answer repeats the question. --force skips the question.

With no organization configured the organizations are listed instead;
with no network configured the networks of the organization are listed.`,
		Example: `  merakiaddr run --org 549236 --network L_646829496481105433 --address "456 Oak Ave"
  merakiaddr run --force
  merakiaddr                                   # same as run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			rec, err := newReconciler(app)
			if err != nil {
				return err
			}

			settings := app.Settings()
			result, err := rec.Run(ctx, reconciler.Config{
				OrganizationID: settings.OrganizationID,
				NetworkID:      settings.NetworkID,
				Address:        settings.DeviceAddress,
				Force:          force,
			})
			printer := output.NewPrinter(app.Stdout(), output.DetectFormat(app.OutputFormat()))
			if err != nil {
				// A run that fails partway still reports the devices it handled.
				if result != nil {
					logging.FromContext(ctx).Warn().
						Str("run_id", result.RunID).
						Int("updated", len(result.Updated)).
						Int("declined", len(result.Declined)).
						Msg("Reconcile aborted")
					if perr := printer.Result(result); perr != nil {
						logging.FromContext(ctx).Error().Err(perr).Msg("Failed to print partial result")
					}
				}
				return err
			}

			return printer.Result(result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing addresses without asking")

	return cmd
}

// NewSetAddressCommand creates the set-address command.
func NewSetAddressCommand(app appcontext.Interface) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "set-address <serial>",
		GroupID: "core",
		Short:   "Set the configured address on a single device",
		Example: `  merakiaddr set-address Q2XX-1111-2222 --address "456 Oak Ave"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			serial := args[0]

			address := app.Settings().DeviceAddress
			if address == "" {
				return &errors.ConfigIncompleteError{
					Field: "device address",
					Hint:  "pass --address or set MERAKI_DEVICE_ADDRESS",
				}
			}

			rec, err := newReconciler(app)
			if err != nil {
				return err
			}

			outcome, err := rec.ReconcileDeviceAddress(ctx, serial, address, force)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(app.Stdout(), "%s: %s\n", serial, outcome)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing address without asking")

	return cmd
}

// newReconciler builds a reconciler over the app's directory and prompter.
// Organization and network listings use the text reporter unless an output
// format was requested.
func newReconciler(app appcontext.Interface) (*reconciler.Reconciler, error) {
	dir, err := app.Directory()
	if err != nil {
		return nil, err
	}
	prompter, err := app.Prompter()
	if err != nil {
		return nil, err
	}

	opts := []reconciler.Option{
		reconciler.WithPrompter(prompter),
		reconciler.WithOutput(app.Stdout()),
	}
	if f := app.OutputFormat(); f != "" {
		format, err := output.ParseFormat(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, reconciler.WithReporter(output.NewPrinter(app.Stdout(), format)))
	}

	return reconciler.New(dir, opts...), nil
}
