package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := r.Group("/posts")

	// === Public Routes ===
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)

	// === Administration Routes (System Admin Only) ===
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("/all", handler.ListAll)
		adminGroup.POST("", handler.Create)
		adminGroup.PATCH("/:id", handler.Update)
		adminGroup.DELETE("/:id", handler.Delete)
	}
}
