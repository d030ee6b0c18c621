package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with middleware, API routes and /metrics
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS())

	h.SetupRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(NotFound)

	return router
}
