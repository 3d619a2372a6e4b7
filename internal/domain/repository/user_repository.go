package repository

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// UserRepository puerto para la gestión de usuarios del backend.
// La contraseña solo viaja al crear; el backend la hashea.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User, password string) error
	Update(ctx context.Context, id string, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

// AuthGateway puerto hacia /auth del backend (emisión de tokens).
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
}
