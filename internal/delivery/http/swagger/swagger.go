package http_swagger

import (
	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cinevault/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controller serves the generated API docs under /swagger.
type Controller struct {
	instance string
}

func New() *Controller {
	return &Controller{instance: docs.SwaggerInfo.InstanceName()}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(c.instance),
		ginSwagger.DocExpansion("none"),
		ginSwagger.PersistAuthorization(true),
	))
}
