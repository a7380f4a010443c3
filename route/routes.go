package route

import (
	"github.com/gin-gonic/gin"

	"cafedir/config"
	"cafedir/controller"
	"cafedir/utils"
)

func CafeRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/", controller.Home)
	router.GET("/random", controller.GetRandomCafe)
	router.GET("/all", controller.GetAllCafes)
	router.GET("/search", controller.SearchCafes)
	router.POST("/add", controller.AddCafe)
	router.PATCH("/update-price/:id", controller.UpdatePrice)
	router.DELETE("/report-closed/:id", utils.APIKeyMiddleware(cfg.APIKey), controller.ReportClosed)
}
