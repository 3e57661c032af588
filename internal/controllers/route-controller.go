package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/services"
	"route-system/pkg/contextkeys"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RouteController struct {
	routeService services.RouteServiceInterface
	boardService services.BoardServiceInterface
	logger       *zap.Logger
}

func NewRouteController(
	routeService services.RouteServiceInterface,
	boardService services.BoardServiceInterface,
	logger *zap.Logger,
) *RouteController {
	return &RouteController{
		routeService: routeService,
		boardService: boardService,
		logger:       logger,
	}
}

func (ctrl *RouteController) GetRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	routes, stale, err := ctrl.routeService.ListRoutes(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	message := "Rotas carregadas com sucesso!"
	if stale {
		message = "Banco de dados indisponível. Exibindo o último snapshot salvo."
	}
	return utils.SuccessResponse(c, dto.RouteListDTO{Routes: routes}, message, http.StatusOK)
}

func (ctrl *RouteController) GetRoutesByFuncionario(c echo.Context) error {
	ctx := c.Request().Context()

	funcionario := c.Param("name")
	if funcionario == "" {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Nome do colaborador é obrigatório.", apperrors.ErrBadRequest, nil),
			ctrl.logger)
	}

	routes, err := ctrl.routeService.ListRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.RouteListDTO{Routes: routes}, "Rotas carregadas com sucesso!", http.StatusOK)
}

func (ctrl *RouteController) GetBoard(c echo.Context) error {
	ctx := c.Request().Context()

	filter := entities.RouteFilter{
		Status:      c.QueryParam("status"),
		Funcionario: c.QueryParam("funcionario"),
		Busca:       c.QueryParam("busca"),
	}

	board, err := ctrl.boardService.GetBoard(ctx, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, board, "Painel carregado com sucesso!", http.StatusOK)
}

// GetBoardByFuncionario é o painel da tela do funcionário: o recorte já vem
// restrito às rotas dele, com os demais filtros aplicados por cima.
func (ctrl *RouteController) GetBoardByFuncionario(c echo.Context) error {
	ctx := c.Request().Context()

	funcionario := c.Param("name")
	if funcionario == "" {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Nome do colaborador é obrigatório.", apperrors.ErrBadRequest, nil),
			ctrl.logger)
	}

	filter := entities.RouteFilter{
		Status: c.QueryParam("status"),
		Busca:  c.QueryParam("busca"),
	}

	board, err := ctrl.boardService.GetBoardByFuncionario(ctx, funcionario, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, board, "Painel carregado com sucesso!", http.StatusOK)
}

func (ctrl *RouteController) CreateRoute(c echo.Context) error {
	ctx := c.Request().Context()

	var payload dto.CreateRouteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido.", err, nil),
			ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.routeService.CreateRoute(ctx, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"id": id}, "Rota cadastrada com sucesso!", http.StatusCreated)
}

func (ctrl *RouteController) UpdateRoute(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRouteID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRouteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido.", err, nil),
			ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.routeService.UpdateRoute(ctx, id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Rota atualizada com sucesso!", http.StatusOK)
}

func (ctrl *RouteController) DeleteRoute(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRouteID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.routeService.DeleteRoute(ctx, id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Rota excluída com sucesso!", http.StatusOK)
}

func (ctrl *RouteController) ClearAllRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := ctrl.routeService.ClearAllRoutes(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64); ok {
		ctrl.logger.Info("limpeza total de rotas",
			zap.Uint64("user_id", userID),
			zap.Int64("excluidas", count),
		)
	}
	return utils.SuccessResponse(c,
		map[string]interface{}{"excluidas": count},
		fmt.Sprintf("%d rota(s) excluída(s) com sucesso!", count),
		http.StatusOK)
}

func (ctrl *RouteController) ClearRoutesByFuncionario(c echo.Context) error {
	ctx := c.Request().Context()

	funcionario := c.Param("name")
	if funcionario == "" {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Nome do colaborador é obrigatório.", apperrors.ErrBadRequest, nil),
			ctrl.logger)
	}

	count, err := ctrl.routeService.ClearRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c,
		map[string]interface{}{"excluidas": count},
		fmt.Sprintf("%d rota(s) de %s excluída(s) com sucesso!", count, funcionario),
		http.StatusOK)
}

func parseRouteID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "ID inválido.", err, nil)
	}
	return id, nil
}
