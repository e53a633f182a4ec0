package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers category routes. Mutations are system-admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/categories")

	// Public
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Admin
	group.Use(authMiddleware, adminMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
