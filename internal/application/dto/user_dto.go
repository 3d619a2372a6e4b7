package dto

import (
	"time"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// UserForm alta/edición de usuario. Password es obligatorio solo al crear.
type UserForm struct {
	Name     string `form:"name" json:"name" validate:"required,max=100"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Role     string `form:"role" json:"role" validate:"required,oneof=admin user"`
	Password string `form:"password" json:"password" validate:"omitempty,min=8"`
}

func UserFormFrom(u entity.User) UserForm {
	return UserForm{Name: u.Name, Email: u.Email, Role: u.Role}
}

// LoginRequest entrada de login (form HTML o JSON).
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Next     string `form:"next" json:"-"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// LoginResponse token de sesión del sitio (no el del backend) más el usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // segundos
	User      UserResponse `json:"user"`
}

func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}
