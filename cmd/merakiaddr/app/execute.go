package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/merakiaddr/internal/cmd/output"
	"github.com/agentstation/merakiaddr/pkg/constants"
)

// Execute runs the merakiaddr CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Set the street address of every device in a Meraki network",
		Version: a.version,
		Long: `merakiaddr writes a configured street address to the devices of a
Meraki Dashboard network.

Devices without an address are updated directly. For devices that already
have one, both addresses are shown and the change is applied only if you
answer "y" (or --force is given).

If no organization is configured the organizations visible to the API key
are listed; if no network is configured the networks of the organization
are listed. Add the chosen ID to the config file and run again.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "directory", Title: "Directory Commands:"})

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.merakiaddr.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.Bool("no-color", false, "disable colored output")
	pf.StringP("format", "o", "", "output format: table, json, yaml, wide")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	pf.String("api-key", "", "Dashboard API key (default $"+constants.EnvAPIKey+")")
	pf.String("org", "", "organization ID (default $MERAKI_ORG_ID)")
	pf.String("network", "", "network ID (default $MERAKI_NETWORK_ID)")
	pf.String("address", "", "street address to set (default $MERAKI_DEVICE_ADDRESS)")
	pf.String("base-url", "", "Dashboard API base URL")

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(Flags{
		Verbose:        mustGetBool(cmd, "verbose"),
		Quiet:          mustGetBool(cmd, "quiet"),
		NoColor:        mustGetBool(cmd, "no-color"),
		Format:         mustGetString(cmd, "format"),
		LogLevel:       mustGetString(cmd, "log-level"),
		APIKey:         mustGetString(cmd, "api-key"),
		OrganizationID: mustGetString(cmd, "org"),
		NetworkID:      mustGetString(cmd, "network"),
		DeviceAddress:  mustGetString(cmd, "address"),
		BaseURL:        mustGetString(cmd, "base-url"),
	})

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	a.logger = configureDefaultLogger(a.config)

	a.logger.Debug().
		Str("config_file", a.config.ConfigFile).
		Str("organization_id", a.config.OrganizationID).
		Str("network_id", a.config.NetworkID).
		Msg("Configuration loaded")

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
