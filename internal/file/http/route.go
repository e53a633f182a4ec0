package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := r.Group("/files")

	group.GET("/:id", handler.ServeFile)
	group.GET("/:id/thumbnail", handler.ServeThumbnail)

	group.POST("", authMiddleware, handler.Upload)
	group.DELETE("/:id", authMiddleware, adminMiddleware, handler.Delete)
}
