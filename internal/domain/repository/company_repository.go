package repository

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// CompanyRepository puerto para los registros únicos de la empresa.
// Get* devuelve (nil, nil) si el backend aún no tiene el registro.
type CompanyRepository interface {
	GetContact(ctx context.Context) (*entity.CompanyContact, error)
	SaveContact(ctx context.Context, contact *entity.CompanyContact) error
	GetAbout(ctx context.Context) (*entity.AboutSection, error)
	SaveAbout(ctx context.Context, about *entity.AboutSection) error
}
