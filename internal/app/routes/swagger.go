package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yigit/schoolportal/docs"
	"github.com/yigit/schoolportal/internal/config"
)

// SetupSwagger mounts the Swagger UI at /swagger outside production and points the
// document at the configured port. It reports whether the UI was mounted.
func SetupSwagger(router *gin.Engine, cfg *config.Config) bool {
	if cfg.IsProduction() {
		return false
	}

	if docs.SwaggerInfo.Host == "" {
		docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
	}

	// bearer tokens survive a page reload while trying the teacher endpoints
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DocExpansion("list"),
	))
	return true
}
