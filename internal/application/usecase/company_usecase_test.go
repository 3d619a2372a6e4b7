package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

func TestCompanyUseCase_RegistroAusenteDevuelveVacio(t *testing.T) {
	uc := usecase.NewCompanyUseCase(&companyRepo{}, nil)
	c, err := uc.GetContact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyContact{}, *c)
}

func TestCompanyUseCase_UpdateContactConservaID(t *testing.T) {
	repo := &companyRepo{contact: &entity.CompanyContact{ID: "c1", Phone: "1"}}
	uc := usecase.NewCompanyUseCase(repo, nil)

	c, err := uc.UpdateContact(context.Background(), dto.ContactForm{Phone: "+966 5", Email: "hi@agency.sa"})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "+966 5", repo.contact.Phone)

	_, err = uc.UpdateContact(context.Background(), dto.ContactForm{Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUseCase_UpdateAboutAutoTraduce(t *testing.T) {
	repo := &companyRepo{}
	uc := usecase.NewCompanyUseCase(repo, &fakeTranslator{})
	a, err := uc.UpdateAbout(context.Background(), dto.AboutForm{TitleEn: "About", ContentEn: "We build", AutoTranslate: true})
	require.NoError(t, err)
	assert.Equal(t, "AR:About", a.TitleAr)
	assert.Equal(t, "AR:We build", a.ContentAr)
	assert.Empty(t, a.MissionAr, "campos sin inglés no se traducen")
}

func TestCompanyUseCase_ErrorDelBackend(t *testing.T) {
	uc := usecase.NewCompanyUseCase(&companyRepo{err: domain.ErrUpstream}, nil)
	_, err := uc.GetAbout(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestUserUseCase_CreateRequierePassword(t *testing.T) {
	repo := &userRepo{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.UserForm{Name: "Ana", Email: "ana@x.com", Role: "admin"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve.Fields["password"])

	u, err := uc.Create(ctx, dto.UserForm{Name: " Ana ", Email: "ANA@x.com", Role: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "u-new", u.ID)
	assert.Equal(t, "ana@x.com", u.Email)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "secreto123", repo.password)
}

func TestUserUseCase_NoPuedeBorrarseASiMismo(t *testing.T) {
	repo := &userRepo{}
	uc := usecase.NewUserUseCase(repo)
	assert.ErrorIs(t, uc.Delete(context.Background(), "me", "me"), domain.ErrConflict)
	require.NoError(t, uc.Delete(context.Background(), "other", "me"))
	assert.Equal(t, []string{"other"}, repo.deleted)
}

func TestUserUseCase_GetInexistente(t *testing.T) {
	_, err := usecase.NewUserUseCase(&userRepo{}).Get(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTestimonialUseCase_SubmitQuedaPendiente(t *testing.T) {
	mem := newMemRepo(testimonialID)
	uc := usecase.NewTestimonialUseCase(testimonialRepo{mem})

	got, err := uc.Submit(context.Background(), dto.TestimonialForm{
		Name: "Sara", Message: "Excellent work, thanks!", Rating: 5, IsApproved: true,
	}, i18n.Arabic)
	require.NoError(t, err)
	assert.False(t, got.IsApproved, "el visitante no puede auto-aprobarse")
	assert.Equal(t, "ar", got.Lang)

	_, err = uc.Submit(context.Background(), dto.TestimonialForm{Name: "x", Message: "short", Rating: 9}, i18n.English)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTestimonialUseCase_ListApprovedRecientesPrimero(t *testing.T) {
	d1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 1, 0)
	mem := newMemRepo(testimonialID,
		entity.Testimonial{ID: "old", IsApproved: true, CreatedAt: &d1},
		entity.Testimonial{ID: "pending", IsApproved: false, CreatedAt: &d2},
		entity.Testimonial{ID: "new", IsApproved: true, CreatedAt: &d2},
		entity.Testimonial{ID: "nodate", IsApproved: true},
	)
	list, err := usecase.NewTestimonialUseCase(testimonialRepo{mem}).ListApproved(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, x := range list {
		ids = append(ids, x.ID)
	}
	assert.Equal(t, []string{"new", "old", "nodate"}, ids)
}

func TestTestimonialUseCase_ToggleApproval(t *testing.T) {
	mem := newMemRepo(testimonialID, entity.Testimonial{ID: "t1"})
	v, err := usecase.NewTestimonialUseCase(testimonialRepo{mem}).ToggleApproval(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, true, mem.patched["t1"])
}

func TestAIUseCase(t *testing.T) {
	ctx := context.Background()
	req := dto.TranslateRequest{Text: "Hello", From: "en", To: "ar"}

	_, err := usecase.NewAIUseCase(nil).Translate(ctx, req)
	assert.ErrorIs(t, err, domain.ErrTranslationUnavailable)

	res, err := usecase.NewAIUseCase(&fakeTranslator{}).Translate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "AR:Hello", res.Text)

	_, err = usecase.NewAIUseCase(&fakeTranslator{err: errors.New("boom")}).Translate(ctx, req)
	assert.ErrorIs(t, err, domain.ErrTranslationUnavailable)

	_, err = usecase.NewAIUseCase(&fakeTranslator{}).Translate(ctx, dto.TranslateRequest{Text: "x", From: "en", To: "en"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSiteUseCase_HomeToleraSeccionesFallidas(t *testing.T) {
	services := newMemRepo(serviceID, entity.Service{ID: "s1"})
	projects := newMemRepo(projectID, entity.Project{ID: "p1", IsVisible: true}, entity.Project{ID: "p2"})
	why := newMemRepo(whyID)
	why.listErr = domain.ErrUpstream
	testimonials := newMemRepo(testimonialID, entity.Testimonial{ID: "t1", IsApproved: true})

	site := usecase.NewSiteUseCase(
		usecase.NewCompanyUseCase(&companyRepo{about: &entity.AboutSection{TitleEn: "Us"}}, nil),
		usecase.NewServiceUseCase(services, nil),
		usecase.NewProjectUseCase(projectRepo{projects}, nil),
		usecase.NewWhyChooseUsUseCase(why, nil),
		usecase.NewTestimonialUseCase(testimonialRepo{testimonials}),
		usecase.NewAdvertisementUseCase(adRepo{newMemRepo(adID)}, nil),
	)
	home := site.Home(context.Background())
	assert.Equal(t, "Us", home.About.TitleEn)
	assert.Len(t, home.Services, 1)
	assert.Len(t, home.Projects, 1)
	assert.Len(t, home.Testimonials, 1)
	assert.Empty(t, home.Why)
	assert.Equal(t, []string{"why"}, home.Failed)
}

func TestSiteUseCase_Pages(t *testing.T) {
	services := newMemRepo(serviceID, entity.Service{ID: "s1"})
	projects := newMemRepo(projectID, entity.Project{ID: "p1", IsVisible: true}, entity.Project{ID: "hidden"})
	ads := newMemRepo(adID, entity.Advertisement{ID: "a1", IsPublished: true}, entity.Advertisement{ID: "draft"})

	site := usecase.NewSiteUseCase(
		usecase.NewCompanyUseCase(&companyRepo{}, nil),
		usecase.NewServiceUseCase(services, nil),
		usecase.NewProjectUseCase(projectRepo{projects}, nil),
		usecase.NewWhyChooseUsUseCase(newMemRepo(whyID), nil),
		usecase.NewTestimonialUseCase(testimonialRepo{newMemRepo(testimonialID)}),
		usecase.NewAdvertisementUseCase(adRepo{ads}, nil),
	)
	pages := site.Pages(context.Background())
	paths := make([]string, 0, len(pages))
	for _, p := range pages {
		paths = append(paths, p.Path)
	}
	assert.Contains(t, paths, "/")
	assert.Contains(t, paths, "/faq")
	assert.Contains(t, paths, "/services/s1")
	assert.Contains(t, paths, "/projects/p1")
	assert.Contains(t, paths, "/advertisements/a1")
	assert.NotContains(t, paths, "/projects/hidden")
	assert.NotContains(t, paths, "/advertisements/draft")
	assert.Len(t, paths, len(usecase.StaticPages)+3)
}
