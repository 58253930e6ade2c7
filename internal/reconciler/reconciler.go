// Package reconciler sets the physical address of every device in a network,
// asking the operator before replacing an address that is already set.
// Devices are processed one at a time in listing order and the first
// failure ends the run.
package reconciler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// Outcome is what happened to a single device.
type Outcome int

const (
	// OutcomeUpdated means the desired address was written.
	OutcomeUpdated Outcome = iota
	// OutcomeDeclined means the operator kept the existing address.
	OutcomeDeclined
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Config selects what a run touches.
type Config struct {
	OrganizationID string
	NetworkID      string
	Address        string
	// Force writes Address even over an existing address without asking.
	Force bool
}

// Reconciler applies a desired address to devices in a Directory.
type Reconciler struct {
	dir      Directory
	prompter Prompter
	reporter Reporter
	out      io.Writer
	now      func() time.Time
	newRunID func() string
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPrompter sets where overwrite confirmations are read from.
func WithPrompter(p Prompter) Option {
	return func(r *Reconciler) {
		r.prompter = p
	}
}

// WithReporter sets how organization and network choices are presented.
func WithReporter(rep Reporter) Option {
	return func(r *Reconciler) {
		r.reporter = rep
	}
}

// WithOutput sets where status lines and confirmation questions are written.
func WithOutput(w io.Writer) Option {
	return func(r *Reconciler) {
		r.out = w
	}
}

// New creates a Reconciler. Without options it prompts on stdin and writes
// to stdout.
func New(dir Directory, opts ...Option) *Reconciler {
	r := &Reconciler{
		dir:      dir,
		out:      os.Stdout,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.prompter == nil {
		r.prompter = NewLinePrompter(os.Stdin, r.out)
	}
	if r.reporter == nil {
		r.reporter = NewTextReporter(r.out)
	}
	return r
}

// ListDeviceSerials returns the serials of the devices in a network in
// the order the directory lists them.
func (r *Reconciler) ListDeviceSerials(ctx context.Context, networkID string) ([]string, error) {
	devices, err := r.dir.ListNetworkDevices(ctx, networkID)
	if err != nil {
		return nil, errors.WrapDirectory("list", "devices", networkID, err)
	}

	serials := make([]string, 0, len(devices))
	for _, d := range devices {
		serials = append(serials, d.Serial)
	}
	return serials, nil
}

// GetDeviceAddress returns the current address of a device; "" means unset.
func (r *Reconciler) GetDeviceAddress(ctx context.Context, serial string) (string, error) {
	device, err := r.dir.GetDevice(ctx, serial)
	if err != nil {
		return "", errors.WrapDirectory("get", "device", serial, err)
	}
	if device == nil {
		return "", errors.NewDirectoryError("get", "device", serial, errors.NewNotFoundError("device", serial))
	}
	return device.Address, nil
}

// ReconcileDeviceAddress writes desired to the device when its address is
// unset or force is true. Otherwise the operator is shown both addresses
// and asked until they answer exactly "y" or "n".
//
// A device whose address already equals desired is not special-cased: the
// operator is asked again.
func (r *Reconciler) ReconcileDeviceAddress(ctx context.Context, serial, desired string, force bool) (Outcome, error) {
	log := logging.FromContext(logging.WithSerial(ctx, serial))

	current, err := r.GetDeviceAddress(ctx, serial)
	if err != nil {
		return OutcomeDeclined, err
	}

	if current == "" || force {
		log.Debug().Bool("force", force).Bool("was_empty", current == "").Msg("Writing device address")
		return OutcomeUpdated, r.write(ctx, serial, desired)
	}

	fmt.Fprintf(r.out, "Device %s already has an address:\n%s\n", serial, current)
	fmt.Fprintf(r.out, "Do you want to overwrite it with\n%s?\n", desired)

	for {
		answer, err := r.prompter.Prompt(ctx, "(y/n) ")
		if err != nil {
			return OutcomeDeclined, err
		}

		switch answer {
		case "y":
			log.Debug().Str("previous", current).Msg("Operator approved overwrite")
			return OutcomeUpdated, r.write(ctx, serial, desired)
		case "n":
			log.Info().Str("address", current).Msg("Operator kept existing address")
			return OutcomeDeclined, nil
		default:
			fmt.Fprintln(r.out, `Answer must be "y" or "n"`)
		}
	}
}

func (r *Reconciler) write(ctx context.Context, serial, address string) error {
	if _, err := r.dir.UpdateDeviceAddress(ctx, serial, address); err != nil {
		return errors.WrapDirectory("update", "device", serial, err)
	}
	logging.FromContext(ctx).Info().Str("serial", serial).Str("address", address).Msg("Device address updated")
	return nil
}

// Run reconciles every device of cfg.NetworkID.
//
// With no organization configured it reports the organizations visible to
// the credential and returns an *errors.ConfigIncompleteError; with no
// network configured it does the same for the organization's networks.
// Neither path lists or modifies devices.
//
// The returned Result is non-nil whenever device processing started, and
// records the devices handled before any error.
func (r *Reconciler) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.OrganizationID == "" {
		return nil, r.reportOrganizations(ctx)
	}
	ctx = logging.WithOrganization(ctx, cfg.OrganizationID)

	if cfg.NetworkID == "" {
		return nil, r.reportNetworks(ctx, cfg.OrganizationID)
	}
	ctx = logging.WithNetwork(ctx, cfg.NetworkID)

	if cfg.Address == "" {
		return nil, errors.NewValidationError("device_address", cfg.Address, "desired address must not be empty")
	}

	result := &Result{
		RunID:          r.newRunID(),
		OrganizationID: cfg.OrganizationID,
		NetworkID:      cfg.NetworkID,
		Address:        cfg.Address,
		StartedAt:      r.now(),
	}
	ctx = logging.WithRunID(ctx, result.RunID)
	log := logging.FromContext(ctx)

	serials, err := r.ListDeviceSerials(ctx, cfg.NetworkID)
	if err != nil {
		result.FinishedAt = r.now()
		return result, err
	}
	log.Info().Int("devices", len(serials)).Msg("Reconciling device addresses")

	for _, serial := range serials {
		outcome, err := r.ReconcileDeviceAddress(ctx, serial, cfg.Address, cfg.Force)
		if err != nil {
			result.FinishedAt = r.now()
			return result, err
		}
		result.record(serial, outcome)
	}

	result.FinishedAt = r.now()
	log.Info().
		Int("updated", len(result.Updated)).
		Int("declined", len(result.Declined)).
		Dur("elapsed", result.Duration()).
		Msg("Reconcile complete")
	return result, nil
}

func (r *Reconciler) reportOrganizations(ctx context.Context) error {
	logging.FromContext(ctx).Warn().Msg("Organization ID is empty, listing organizations available to the API key")

	orgs, err := r.dir.ListOrganizations(ctx)
	if err != nil {
		return errors.WrapDirectory("list", "organizations", "", err)
	}
	if err := r.reporter.Organizations(orgs); err != nil {
		return err
	}
	return &errors.ConfigIncompleteError{
		Field: "organization ID",
		Hint:  "enter organization ID in config file",
	}
}

func (r *Reconciler) reportNetworks(ctx context.Context, orgID string) error {
	logging.FromContext(ctx).Warn().Msg("Network ID is empty, listing networks in organization")

	networks, err := r.dir.ListOrganizationNetworks(ctx, orgID)
	if err != nil {
		return errors.WrapDirectory("list", "networks", orgID, err)
	}
	if err := r.reporter.Networks(orgID, networks); err != nil {
		return err
	}
	return &errors.ConfigIncompleteError{
		Field: "network ID",
		Hint:  "enter network ID in config file",
	}
}
