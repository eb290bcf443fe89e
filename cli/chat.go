package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	contractx "github.com/aura-netops/aura/agent/contract"
	"github.com/aura-netops/aura/agent/loop"
)

func newChatCommand() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive triage session",
		Long: `Start an interactive session with the triage agent. Service-impacting
actions stay blocked until approved in-session:

  /approve <tool> <target>   grant a one-shot approval
  /reset                     clear the conversation and approvals
  /quit                      exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := newAgentService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			return runChat(ctx, svc, sessionID)
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "session ID to resume (default: new session)")
	return cmd
}

func runChat(ctx context.Context, svc *loop.Service, sessionID string) error {
	fmt.Println(headline("AURA Network Operations Agent"))
	fmt.Println(dim("session " + sessionID + " | /approve <tool> <target> | /reset | /quit"))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit", line == "exit", line == "/quit":
			return nil
		case strings.HasPrefix(line, "/"):
			if err := runChatCommand(ctx, svc, sessionID, line); err != nil {
				fmt.Printf("%s %v\n", bad("!"), err)
			}
			continue
		}

		reply, err := svc.HandleMessage(ctx, sessionID, line)
		switch {
		case errors.Is(err, contractx.ErrIterationLimit):
			fmt.Printf("\n%s %s\n\n", caution("AURA:"), reply)
		case err != nil:
			fmt.Printf("%s %v\n", bad("!"), err)
		default:
			fmt.Printf("\n%s %s\n\n", good("AURA:"), reply)
		}
	}
}

func runChatCommand(ctx context.Context, svc *loop.Service, sessionID, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/approve":
		if len(fields) != 3 {
			return errors.New("usage: /approve <tool> <target>")
		}
		approval, err := svc.Approve(ctx, sessionID, fields[1], fields[2])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s approved for %s %s\n",
			good("*"), fields[1], fields[2], dim("(token "+approval.Token+", single use)"))
		return nil
	case "/reset":
		if err := svc.Reset(ctx, sessionID); err != nil {
			return err
		}
		fmt.Printf("%s session cleared\n", good("*"))
		return nil
	default:
		return fmt.Errorf("unknown command %s", fields[0])
	}
}
