package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	contractx "github.com/aura-netops/aura/agent/contract"
	"github.com/aura-netops/aura/agent/loop"
	toolx "github.com/aura-netops/aura/agent/tool"
)

// The scripted fiber-degradation walkthrough: investigate DUB-07, verify the
// NTN backup link, then fail over once approved.
var scenarioSteps = []struct {
	prompt  string
	approve string
}{
	{
		prompt: "We're seeing alarms from the DUB-07 site. Users report slow speeds. Can you investigate?",
	},
	{
		prompt: "Yes, please check the NTN backup link quality before we failover.",
	},
	{
		prompt:  "Approved. Please proceed with the failover.",
		approve: "DUB-07",
	},
}

func newScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Run the scripted DUB-07 fiber degradation walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := newAgentService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			return runScenario(ctx, svc)
		},
	}
}

func runScenario(ctx context.Context, svc *loop.Service) error {
	sessionID := "scenario-" + uuid.NewString()

	fmt.Println(headline("AURA scripted scenario: DUB-07 fiber degradation"))
	fmt.Println(dim("session " + sessionID))

	for i, step := range scenarioSteps {
		fmt.Printf("\n%s %s\n", headline(fmt.Sprintf("[%d/%d] Operator:", i+1, len(scenarioSteps))), step.prompt)

		if step.approve != "" {
			approval, err := svc.Approve(ctx, sessionID, toolx.ToolInitiateFailover, step.approve)
			if err != nil {
				return fmt.Errorf("granting approval: %w", err)
			}
			fmt.Printf("%s approval recorded for %s on %s %s\n",
				good("*"), toolx.ToolInitiateFailover, step.approve, dim("(token "+approval.Token+")"))
		}

		reply, err := svc.HandleMessage(ctx, sessionID, step.prompt)
		switch {
		case errors.Is(err, contractx.ErrIterationLimit):
			fmt.Printf("\n%s %s\n", caution("AURA:"), reply)
		case err != nil:
			return err
		default:
			fmt.Printf("\n%s %s\n", good("AURA:"), reply)
		}
	}

	fmt.Printf("\n%s scenario complete\n", good("*"))
	return nil
}
