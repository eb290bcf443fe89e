// Package cli wires the agent, gateway, and operator tooling into one
// command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	headline = color.New(color.FgCyan, color.Bold).SprintFunc()
	good     = color.New(color.FgGreen).SprintFunc()
	caution  = color.New(color.FgYellow).SprintFunc()
	bad      = color.New(color.FgRed).SprintFunc()
	dim      = color.New(color.FgHiBlack).SprintFunc()
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aura",
		Short:         "Autonomous fault triage and remediation for multi-vendor networks",
		Long: `AURA investigates network faults with read-only telemetry tools,
proposes remediations, and executes service-impacting actions only after
explicit operator approval. Vendor differences are absorbed by a gateway
that routes canonical tool calls to Nokia, Ericsson, and Cisco adapters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newChatCommand(),
		newScenarioCommand(),
		newGatewayCommand(),
		newAdaptersCommand(),
		newValidateCommand(),
		newDashboardCommand(),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", bad("error:"), err)
		os.Exit(1)
	}
}
