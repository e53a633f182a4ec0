package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers asset routes. Browsing is public; mutations are
// permission-checked per organization inside the handler.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/assets")

	// Public
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Authenticated
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
