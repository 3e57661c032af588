package routes

import (
	"route-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runPlanilhaRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.PlanilhaController) {
	secureGroup.POST("/routes/import", ctrl.ImportRoutes)
	api.GET("/routes/export", ctrl.ExportRoutes)
}
