// Package server exposes the gateway router and the vendor adapters over
// HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/aura-netops/aura/gateway"
)

type Config struct {
	Addr string `envconfig:"ADDR" split_words:"true" default:":8080"`
}

// NewRouterHandler builds the gateway HTTP surface: POST /route plus health
// and metrics endpoints.
func NewRouterHandler(rt *gateway.Router) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), cors.Default())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.POST("/route", func(c *gin.Context) {
		var req gateway.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		resp, err := rt.Route(c.Request.Context(), req)
		if err != nil {
			writeRouteError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	return engine
}

func writeRouteError(c *gin.Context, err error) {
	var routeErr *gateway.RouteError
	if !errors.As(err, &routeErr) {
		log.Error().Err(err).Msg("unclassified gateway error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal gateway error"})
		return
	}

	// Adapter rejections pass through with the vendor's own body.
	if routeErr.Body != nil {
		c.JSON(routeErr.Status, routeErr.Body)
		return
	}

	payload := gin.H{"error": routeErr.Err.Error()}
	if len(routeErr.AvailableSites) > 0 {
		payload["available_sites"] = routeErr.AvailableSites
	}
	c.JSON(routeErr.Status, payload)
}
