package controllers

import (
	"net/http"

	"route-system/internal/services"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetWhatsAppReport é o relatório da tela de admin: funcionário obrigatório
// na query string, data opcional (YYYY-MM-DD).
func (ctrl *ReportController) GetWhatsAppReport(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := ctrl.reportService.ResumoPorFuncionario(ctx, c.QueryParam("funcionario"), c.QueryParam("data"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, report, "Relatório gerado com sucesso!", http.StatusOK)
}

// GetMyWhatsAppReport é o relatório da tela do funcionário, com a lista de
// pendências enumerada.
func (ctrl *ReportController) GetMyWhatsAppReport(c echo.Context) error {
	ctx := c.Request().Context()

	funcionario := c.Param("name")
	if funcionario == "" {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Nome do colaborador é obrigatório.", apperrors.ErrBadRequest, nil),
			ctrl.logger)
	}

	report, err := ctrl.reportService.MeuRelatorio(ctx, funcionario)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, report, "Relatório gerado com sucesso!", http.StatusOK)
}
