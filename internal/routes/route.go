package routes

import (
	"route-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRouteRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.RouteController) {
	api.GET("/routes", ctrl.GetRoutes)
	api.POST("/routes", ctrl.CreateRoute)
	api.GET("/routes/board", ctrl.GetBoard)
	api.GET("/routes/board/by-assignee/:name", ctrl.GetBoardByFuncionario)
	api.GET("/routes/by-assignee/:name", ctrl.GetRoutesByFuncionario)
	api.PUT("/routes/:id", ctrl.UpdateRoute)
	api.DELETE("/routes/:id", ctrl.DeleteRoute)

	secureGroup.DELETE("/routes/clear-all", ctrl.ClearAllRoutes)
	secureGroup.DELETE("/routes/clear-by-assignee/:name", ctrl.ClearRoutesByFuncionario)
}
