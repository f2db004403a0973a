package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Foodie Site API",
		"version": Version,
	})
}

// Welcome lists the public API entry points
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Foodie Site API",
		"health":  "/health",
		"metrics": "/metrics",
		"endpoints": []string{
			"/api/categories",
			"/api/menu-items",
			"/api/reviews",
			"/api/contact",
			"/api/reservation",
		},
	})
}
