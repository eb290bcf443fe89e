package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aura-netops/aura/gateway"
	"github.com/aura-netops/aura/gateway/adapterclient"
	"github.com/aura-netops/aura/gateway/server"
	configx "github.com/aura-netops/aura/pkg/config"
)

func newGatewayCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the vendor gateway router",
		Long: `Serve POST /route, translating canonical tool calls into vendor-native
invocations. Vendor adapter endpoints come from GATEWAY_NOKIA_ENDPOINT,
GATEWAY_ERICSSON_ENDPOINT, and GATEWAY_CISCO_ENDPOINT; when none are set
the three reference adapters run in-process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, adapters := buildGatewayBackend()
			rt, err := gateway.NewRouter(registry, adapters)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = configx.MustNew[server.Config]("GATEWAY").Addr
			}

			log.Info().Str("addr", addr).Msg("gateway listening")
			return server.NewRouterHandler(rt).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default GATEWAY_ADDR or :8080)")
	return cmd
}

func buildGatewayBackend() (*gateway.Registry, adapterclient.Client) {
	eps := configx.MustNew[gateway.Endpoints]("GATEWAY")
	if eps.Nokia == "" && eps.Ericsson == "" && eps.Cisco == "" {
		log.Info().Msg("no vendor endpoints configured, running adapters in-process")
		local := adapterclient.LocalEndpoints()
		return gateway.NewRegistry(gateway.Endpoints{
			Nokia:    local[gateway.VendorNokia],
			Ericsson: local[gateway.VendorEricsson],
			Cisco:    local[gateway.VendorCisco],
		}), adapterclient.NewLocalDefault()
	}
	return gateway.NewRegistry(*eps), adapterclient.NewHTTPClient(0)
}
