package restapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

const (
	pathUsers = "/auth/users"
	pathLogin = "/auth/login"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.AuthGateway    = (*AuthGateway)(nil)
)

// userWire algunos despliegues del backend usan "id" en lugar de "_id".
type userWire struct {
	ID        string     `json:"_id"`
	AltID     string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (w userWire) toEntity() entity.User {
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	return entity.User{ID: id, Name: w.Name, Email: w.Email, Role: w.Role, CreatedAt: w.CreatedAt}
}

type userPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// UserRepo usuarios administrados por el backend en /auth/users.
type UserRepo struct {
	c *Client
}

func NewUserRepository(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var wire []userWire
	if err := r.c.Do(ctx, http.MethodGet, pathUsers, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var w userWire
	if err := r.c.Do(ctx, http.MethodGet, pathUsers+"/"+url.PathEscape(id), nil, &w); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	u := w.toEntity()
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User, password string) error {
	var w userWire
	in := userPayload{Name: user.Name, Email: user.Email, Role: user.Role, Password: password}
	if err := r.c.Do(ctx, http.MethodPost, pathUsers, in, &w); err != nil {
		return err
	}
	if created := w.toEntity(); created.ID != "" {
		user.ID = created.ID
		user.CreatedAt = created.CreatedAt
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, id string, user *entity.User) error {
	in := userPayload{Name: user.Name, Email: user.Email, Role: user.Role}
	if err := r.c.Do(ctx, http.MethodPut, pathUsers+"/"+url.PathEscape(id), in, nil); err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, pathUsers+"/"+url.PathEscape(id), nil, nil)
}

// AuthGateway login en el backend: POST /auth/login -> {token, role, user}.
type AuthGateway struct {
	c *Client
}

func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

type loginResponse struct {
	Token string   `json:"token"`
	Role  string   `json:"role"`
	User  userWire `json:"user"`
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var res loginResponse
	in := map[string]string{"email": email, "password": password}
	if err := g.c.Do(ctx, http.MethodPost, pathLogin, in, &res); err != nil {
		return nil, err
	}
	u := res.User.toEntity()
	if u.Role == "" {
		u.Role = res.Role
	}
	if u.Email == "" {
		u.Email = email
	}
	return &entity.Session{Token: res.Token, User: u}, nil
}
