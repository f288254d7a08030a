package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail writes the uniform failure body. Every failure, regardless of
// kind, maps to a 500 with the error message surfaced to the caller.
func Fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
