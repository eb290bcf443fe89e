package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aura-netops/aura/gateway/adapters"
	"github.com/aura-netops/aura/gateway/server"
)

func newAdaptersCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "adapters",
		Short: "Serve the reference vendor adapters over HTTP",
		Long: `Host the Nokia, Ericsson, and Cisco reference adapters at
POST /adapters/:vendor/invoke, for running the gateway against real HTTP
endpoints instead of in-process dispatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := server.NewAdapterHandler(
				adapters.NewNokia(),
				adapters.NewEricsson(),
				adapters.NewCisco(),
			)
			log.Info().Str("addr", addr).Msg("vendor adapters listening")
			return handler.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8081", "listen address")
	return cmd
}
