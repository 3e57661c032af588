package routes

import (
	"route-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController) {
	api.GET("/reports/whatsapp", ctrl.GetWhatsAppReport)
	api.GET("/reports/whatsapp/me/:name", ctrl.GetMyWhatsAppReport)
}
