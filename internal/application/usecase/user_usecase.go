package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios del backend.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.repo.List(ctx)
}

// Get obtiene un usuario por ID; domain.ErrNotFound si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Create la contraseña es obligatoria al crear; el backend la hashea.
func (uc *UserUseCase) Create(ctx context.Context, form dto.UserForm) (*entity.User, error) {
	if err := dto.Validate(form); err != nil {
		return nil, err
	}
	if form.Password == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"password": "required"}}
	}
	u := userFromForm(form)
	if err := uc.repo.Create(ctx, u, form.Password); err != nil {
		return nil, err
	}
	return u, nil
}

// Update la contraseña no se modifica desde aquí.
func (uc *UserUseCase) Update(ctx context.Context, id string, form dto.UserForm) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := dto.Validate(form); err != nil {
		return nil, err
	}
	u := userFromForm(form)
	if err := uc.repo.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete un administrador no puede eliminar su propia cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, id, currentUserID string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	if id == currentUserID {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func userFromForm(f dto.UserForm) *entity.User {
	return &entity.User{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.ToLower(strings.TrimSpace(f.Email)),
		Role:  f.Role,
	}
}
