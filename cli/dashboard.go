package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-netops/aura/pkg/audit"
	configx "github.com/aura-netops/aura/pkg/config"
)

func newDashboardCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show recent entries from the operations log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configx.MustNew[audit.Config]("AUDIT")

			store, err := audit.Open(ctx, cfg.Path)
			if err != nil {
				return fmt.Errorf("open operations log at %s: %w", cfg.Path, err)
			}
			defer store.Close()

			records, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println(dim("operations log is empty"))
				return nil
			}

			fmt.Println(headline("Recent operations"))
			for _, rec := range records {
				kind := rec.Kind
				switch rec.Kind {
				case audit.KindRemediation:
					kind = bad(rec.Kind)
				case audit.KindApproval:
					kind = caution(rec.Kind)
				default:
					kind = good(rec.Kind)
				}

				line := fmt.Sprintf("  %s  %-14s", rec.Time.Format("2006-01-02 15:04:05"), kind)
				if rec.Tool != "" {
					line += " " + rec.Tool
				}
				if rec.Target != "" {
					line += "(" + rec.Target + ")"
				}
				if rec.Detail != "" {
					line += " " + dim(rec.Detail)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to show")
	return cmd
}
