package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers organization routes.
// Creation and deletion are system-admin actions; management of an existing
// organization is permission-checked inside the handler.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/organizations")

	// Public
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Authenticated
	group.Use(authMiddleware)
	{
		group.POST("", adminMiddleware, h.Create)
		group.DELETE("/:id", adminMiddleware, h.Delete)
		group.PATCH("/:id", h.Update)

		group.GET("/:id/members", h.ListMembers)
		group.POST("/:id/members", h.AddMember)
		group.PATCH("/:id/members/:userId", h.UpdateMember)
		group.DELETE("/:id/members/:userId", h.RemoveMember)
	}
}
