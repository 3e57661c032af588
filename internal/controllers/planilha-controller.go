package controllers

import (
	"fmt"
	"net/http"
	"time"

	"route-system/internal/services"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []interface{}{
	"Submission ID", "Colaborador", "Funcionário", "Endereço", "Número",
	"Complemento", "Bairro", "Cidade", "Estado", "CEP", "Observacao",
	"Data de Entrega", "Prioridade", "Status", "Origem", "Data de Criação",
	"Executado em",
}

type PlanilhaController struct {
	importerService services.ImporterServiceInterface
	routeService    services.RouteServiceInterface
	logger          *zap.Logger
}

func NewPlanilhaController(
	importerService services.ImporterServiceInterface,
	routeService services.RouteServiceInterface,
	logger *zap.Logger,
) *PlanilhaController {
	return &PlanilhaController{
		importerService: importerService,
		routeService:    routeService,
		logger:          logger,
	}
}

// ImportRoutes recebe o arquivo no campo multipart "planilha".
func (ctrl *PlanilhaController) ImportRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("planilha")
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Nenhum arquivo de planilha foi enviado.", err, nil),
			ctrl.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Não foi possível abrir o arquivo enviado.", err, nil),
			ctrl.logger)
	}
	defer file.Close()

	result, err := ctrl.importerService.ImportRoutes(ctx, file)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	message := fmt.Sprintf("Importação concluída: %d importada(s), %d ignorada(s).", result.Importadas, result.Ignoradas)
	return utils.SuccessResponse(c, result, message, http.StatusOK)
}

// ExportRoutes gera a planilha com o snapshot atual e responde como download.
func (ctrl *PlanilhaController) ExportRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	routes, _, err := ctrl.routeService.ListRoutes(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	for i, route := range routes {
		row := []interface{}{
			route.SubmissionID, route.Colaborador, route.Funcionario,
			route.Endereco, route.Numero, route.Complemento, route.Bairro,
			route.Cidade, route.Estado, route.Cep, route.Observacao,
			route.DataEntrega, route.Prioridade, route.Status, route.Origem,
			route.DataCriacao, route.ExecutedAt.String,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	filename := fmt.Sprintf("rotas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
