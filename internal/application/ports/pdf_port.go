package ports

import (
	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// ProfileData datos que alimentan el PDF del perfil de la empresa.
type ProfileData struct {
	SiteName  string
	PublicURL string
	Contact   *entity.CompanyContact
	About     *entity.AboutSection
	Services  []entity.Service
	Projects  []entity.Project
	Why       []entity.WhyChooseUs
}

// ProfilePDFGenerator puerto de salida para generar el PDF del perfil (brochure).
type ProfilePDFGenerator interface {
	Generate(data ProfileData) ([]byte, error)
}
