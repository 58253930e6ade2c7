package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/merakiaddr/cmd/merakiaddr/cmd/directory"
	"github.com/agentstation/merakiaddr/cmd/merakiaddr/cmd/reconcile"
	"github.com/agentstation/merakiaddr/cmd/merakiaddr/cmd/version"
)

// registerCommands registers all subcommands with the root command.
// The root command itself behaves like "run".
func (a *App) registerCommands(rootCmd *cobra.Command) {
	runCmd := reconcile.NewRunCommand(a)
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reconcile.NewSetAddressCommand(a))

	rootCmd.AddCommand(directory.NewOrganizationsCommand(a))
	rootCmd.AddCommand(directory.NewNetworksCommand(a))
	rootCmd.AddCommand(directory.NewDevicesCommand(a))

	rootCmd.AddCommand(version.NewCommand(a))
}
