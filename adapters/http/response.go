package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Responses use the {success, message, data} envelope the frontend
// consumes; errors go through the error middleware instead.

func respondOK(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}
