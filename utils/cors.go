package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware sets the headers browsers expect on the list endpoint.
// Preflight is answered by the OPTIONS route, which uses the extended set.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Next()
	}
}

// UploadCORSMiddleware sets the extended header set used by the upload
// endpoint, including the signed-request headers some clients forward.
func UploadCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
