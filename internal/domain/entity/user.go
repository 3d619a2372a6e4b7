package entity

import "time"

// Roles válidos para User. Solo admin entra a la zona de administración.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario del backend (la contraseña nunca se guarda en el sitio).
type User struct {
	ID        string     `json:"_id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Session resultado de un login en el backend: token bearer más el usuario.
type Session struct {
	Token string
	User  User
}
