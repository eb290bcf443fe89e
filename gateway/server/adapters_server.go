package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aura-netops/aura/gateway/adapters"
)

type adapterInvokeRequest struct {
	Tool   string         `json:"tool" binding:"required"`
	Target string         `json:"target" binding:"required"`
	Params map[string]any `json:"params"`
}

// NewAdapterHandler hosts vendor adapters at POST /adapters/:vendor/invoke,
// one route serving however many vendors are registered.
func NewAdapterHandler(adapterSet ...adapters.Adapter) *gin.Engine {
	byVendor := make(map[string]adapters.Adapter, len(adapterSet))
	for _, a := range adapterSet {
		byVendor[strings.ToLower(a.Vendor())] = a
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), cors.Default())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/adapters/:vendor/invoke", func(c *gin.Context) {
		adapter, ok := byVendor[strings.ToLower(c.Param("vendor"))]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown vendor: " + c.Param("vendor")})
			return
		}

		var req adapterInvokeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		status, body := adapter.Invoke(c.Request.Context(), req.Tool, req.Target, req.Params)
		c.JSON(status, body)
	})

	return engine
}
