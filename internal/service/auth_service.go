package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/config"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/middleware"
)

// AuthService issues access tokens for the configured operator account.
// There is no user store; installer crews share one dashboard login.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.cfg.Auth.Username || req.Password != s.cfg.Auth.Password {
		return nil, fmt.Errorf("invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.JWT.AccessTokenExpire)
	claims := middleware.JWTClaims{
		UserID: req.Username,
		Name:   req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResponse{AccessToken: signed, ExpiresAt: expiresAt}, nil
}
