package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware, availabilityLimiter gin.HandlerFunc) {
	// Public probe, rate limited to keep slot scraping in check.
	r.GET("/assets/:id/availability", availabilityLimiter, handler.CheckAvailability)

	group := r.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("", handler.Create)
		group.PATCH("/:id/status", handler.UpdateStatus)
		group.POST("/:id/payment-proof", handler.AttachPaymentProof)
		group.DELETE("/:id", adminMiddleware, handler.Delete)
	}
}
