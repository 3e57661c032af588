package routes

import (
	"route-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runSyncRouter(api *echo.Group, ctrl *controllers.SyncController) {
	api.POST("/sync/queue", ctrl.EnqueueRoute)
	api.GET("/sync/queue", ctrl.GetPendingRoutes)
	api.POST("/sync/run", ctrl.RunReplay)
}
