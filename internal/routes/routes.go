package routes

import (
	_ "geekku_backend/docs"
	"geekku_backend/internal/handlers"
	"geekku_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты от корня
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.RegisterRoutes(ginRouter.Group("/"))

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
