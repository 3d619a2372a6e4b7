package usecase

import (
	"context"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// CompanyUseCase datos de contacto y sección "Quiénes somos" (registros únicos).
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	translator ports.Translator
}

// NewCompanyUseCase construye el caso de uso. translator puede ser nil.
func NewCompanyUseCase(repo repository.CompanyRepository, translator ports.Translator) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, translator: translator}
}

// GetContact si el backend aún no tiene el registro devuelve uno vacío.
func (uc *CompanyUseCase) GetContact(ctx context.Context) (*entity.CompanyContact, error) {
	c, err := uc.repo.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &entity.CompanyContact{}, nil
	}
	return c, nil
}

// UpdateContact valida y guarda conservando el id existente.
func (uc *CompanyUseCase) UpdateContact(ctx context.Context, form dto.ContactForm) (*entity.CompanyContact, error) {
	if err := dto.Validate(form); err != nil {
		return nil, err
	}
	current, err := uc.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	c := &entity.CompanyContact{
		ID:    current.ID,
		Phone: form.Phone, Email: form.Email, WhatsApp: form.WhatsApp,
		AddressEn: form.AddressEn, AddressAr: form.AddressAr, MapURL: form.MapURL,
		Facebook: form.Facebook, Instagram: form.Instagram, LinkedIn: form.LinkedIn, Twitter: form.Twitter,
	}
	if err := uc.repo.SaveContact(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetAbout si el backend aún no tiene el registro devuelve uno vacío.
func (uc *CompanyUseCase) GetAbout(ctx context.Context) (*entity.AboutSection, error) {
	a, err := uc.repo.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return &entity.AboutSection{}, nil
	}
	return a, nil
}

func (uc *CompanyUseCase) UpdateAbout(ctx context.Context, form dto.AboutForm) (*entity.AboutSection, error) {
	if err := dto.Validate(form); err != nil {
		return nil, err
	}
	autoTranslate(ctx, uc.translator, &form)
	current, err := uc.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	a := &entity.AboutSection{
		ID:      current.ID,
		TitleEn: form.TitleEn, TitleAr: form.TitleAr,
		ContentEn: form.ContentEn, ContentAr: form.ContentAr,
		MissionEn: form.MissionEn, MissionAr: form.MissionAr,
		VisionEn: form.VisionEn, VisionAr: form.VisionAr,
		Image: form.Image,
	}
	if err := uc.repo.SaveAbout(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
