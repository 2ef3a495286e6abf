package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.GET("/health", h.Health)
	router.POST("/generate-website", h.GenerateWebsite)
	router.POST("/generate-and-push-to-github", h.GenerateAndPush)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
