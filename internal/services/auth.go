package services

import (
	"context"
	"errors"

	"route-system/internal/dto"
	"route-system/internal/repositories"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/service"
	"route-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindByLogin(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Senha); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Perfil)
	if err != nil {
		s.logger.Error("falha ao gerar tokens", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
