package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	api.Use(RequestID())
	{
		api.GET("/health", h.Health)
		api.POST("/poster", h.Poster)
		api.GET("/qr", h.QR)
	}
}
