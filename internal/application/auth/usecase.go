package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
	"github.com/jhoicas/agency-web/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra el backend y emisión de la sesión del sitio.
type AuthUseCase struct {
	gateway repository.AuthGateway
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, jwtCfg: jwtCfg}
}

// Login verifica credenciales en el backend y firma un JWT que lleva el token del backend.
// Solo los administradores obtienen sesión: el resto recibe domain.ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	sess, err := uc.gateway.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	if sess.User.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:   sess.User.ID,
		Name:     sess.User.Name,
		Role:     sess.User.Role,
		APIToken: sess.Token,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      dto.ToUserResponse(sess.User),
	}, nil
}

// SafeNext valida el destino post-login: solo rutas locales, nunca "//host" ni URLs absolutas.
// Los navegadores descartan tabuladores y saltos de línea en Location, así que cualquier
// carácter de control invalida el destino.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return fallback
	}
	for i := 0; i < len(next); i++ {
		if next[i] < 0x20 || next[i] == 0x7f {
			return fallback
		}
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}
