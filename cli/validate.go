package cli

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	toolx "github.com/aura-netops/aura/agent/tool"
	"github.com/aura-netops/aura/gateway"
	configx "github.com/aura-netops/aura/pkg/config"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Probe every managed site through the gateway",
		Long: `Issue a read-only KPI query for each site in the routing table, all
concurrently, and report per-site reachability. Requires GATEWAY_URL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configx.MustNew[gateway.ClientConfig]("GATEWAY")
			if cfg.URL == "" {
				return errors.New("GATEWAY_URL must point at a running gateway")
			}
			client, err := gateway.NewClient(*cfg)
			if err != nil {
				return err
			}

			sites := gateway.NewRegistry(gateway.Endpoints{}).Sites()

			var mu sync.Mutex
			results := make(map[string]error, len(sites))

			g, ctx := errgroup.WithContext(cmd.Context())
			for _, site := range sites {
				g.Go(func() error {
					_, err := client.Call(ctx, toolx.ToolGetCellKPIs, site)
					mu.Lock()
					results[site] = err
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Println(headline("Gateway reachability"))
			ordered := make([]string, 0, len(results))
			for site := range results {
				ordered = append(ordered, site)
			}
			sort.Strings(ordered)

			failures := 0
			for _, site := range ordered {
				if err := results[site]; err != nil {
					failures++
					fmt.Printf("  %s %-8s %v\n", bad("x"), site, err)
					continue
				}
				fmt.Printf("  %s %-8s ok\n", good("+"), site)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d sites unreachable", failures, len(ordered))
			}
			return nil
		},
	}
}
