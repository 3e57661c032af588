package dto

type LoginDTO struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
