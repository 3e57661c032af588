package controllers

import (
	"net/http"

	"route-system/internal/dto"
	"route-system/internal/services"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido.", err, nil),
			ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	tokens, err := ctrl.authService.Login(ctx, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, tokens, "Login realizado com sucesso!", http.StatusOK)
}
