package routes

import (
	"route-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
}
