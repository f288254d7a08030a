package main

import (
	"PhotoVault/config"
	"PhotoVault/internal/handler"
	"PhotoVault/internal/mq"
	"PhotoVault/internal/repo"
	"PhotoVault/internal/service"
	"PhotoVault/internal/storage"
	"PhotoVault/router"
	"PhotoVault/utils"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitMinio()

	svc := service.NewPhotoService(
		repo.NewPhotoRepo(repo.Db),
		storage.Default,
		utils.NewRedisCache(repo.Redis),
		mq.Publisher{},
	)

	router := router.InitRouter(handler.NewPhotoHandler(svc))

	router.Run(":8000")
}
