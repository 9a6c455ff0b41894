// Package web holds the shared translation from domain errors to HTTP
// responses, so every controller surfaces the same stable codes.
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayant71/shopscale/models"
)

// Error writes the JSON error response for a domain error. Unexpected store
// failures are logged and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	status := models.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"code": "INTERNAL_ERROR", "error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"code": models.ErrorCode(err), "error": err.Error()})
}
