package router

import (
	"PhotoVault/internal/handler"
	"PhotoVault/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter(photos *handler.PhotoHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Preflight must hit a registered route for the CORS middleware
		// to run. Browsers never send Authorization on OPTIONS, so no
		// auth here; the extended header set covers both operations.
		api.OPTIONS("/photos", utils.UploadCORSMiddleware())

		list := api.Group("/photos")
		list.Use(utils.CORSMiddleware(), utils.AuthMiddleware())
		list.GET("", photos.List)

		upload := api.Group("/photos")
		upload.Use(utils.UploadCORSMiddleware(), utils.AuthMiddleware())
		upload.POST("", photos.Upload)
	}
	return r
}
