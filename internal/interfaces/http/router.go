package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/agency-web/internal/application/analytics"
	"github.com/jhoicas/agency-web/internal/application/auth"
	"github.com/jhoicas/agency-web/internal/application/brochure"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/pkg/i18n"
	"github.com/jhoicas/agency-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SiteUC          *usecase.SiteUseCase
	CompanyUC       *usecase.CompanyUseCase
	ServiceUC       *usecase.ServiceUseCase
	ProjectUC       *usecase.ProjectUseCase
	CategoryUC      *usecase.CategoryUseCase
	AdvertisementUC *usecase.AdvertisementUseCase
	FAQUC           *usecase.FAQUseCase
	TestimonialUC   *usecase.TestimonialUseCase
	WhyChooseUsUC   *usecase.WhyChooseUsUseCase
	UserUC          *usecase.UserUseCase
	AIUC            *usecase.AIUseCase
	AuthUC          *auth.AuthUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	BrochureUC      *brochure.PDFUseCase

	Log             *logger.Logger
	AppName         string
	SiteName        string
	PublicURL       string
	DefaultLang     i18n.Lang
	DefaultCurrency string
	JWTSecret       string
	Session         SessionCookie
}

// Router registra las rutas del sitio, del panel y de la API JSON.
// El orden importa: el grupo /:lang captura cualquier primer segmento y va al final.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app.Use(RequestLogger(deps.Log))

	site := NewSiteHandler(deps)
	app.Get("/health", site.Health)
	app.Get("/sitemap.xml", site.Sitemap)
	app.Get("/robots.txt", site.Robots)
	app.Use("/assets", Assets())

	// API JSON (público: login y anuncios; resto con Bearer de sesión y rol admin)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.SiteName)
	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole("admin")}
	api := app.Group("/api/v1")
	api.Post("/auth/login", authHandler.APILogin)
	api.Get("/advertisements", NewAdvertisementHandler(deps.AdvertisementUC).List)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.SiteName)
	api.Get("/dashboard/summary", append(adminOnly, dashboardHandler.GetSummary)...)
	api.Post("/ai/translate", append(adminOnly, RequireFeature("ai", deps.AIUC.Available), NewAIHandler(deps.AIUC).Translate)...)

	app.Get("/", RootRedirect(deps.DefaultLang))

	// Sitio por idioma: /en/..., /ar/...
	lang := app.Group("/:lang", LangMiddleware(), SessionMiddleware(deps.JWTSecret, deps.Session.Name), FlashMiddleware())

	public := NewPublicHandler(deps)
	lang.Get("/", public.Home)
	lang.Get("/about", public.About)
	lang.Get("/services", public.Services)
	lang.Get("/services/:id", public.ServiceDetail)
	lang.Get("/projects", public.Projects)
	lang.Get("/projects/:id", public.ProjectDetail)
	lang.Get("/advertisements", public.Advertisements)
	lang.Get("/advertisements/:id", public.AdvertisementDetail)
	lang.Get("/contact", public.Contact)
	lang.Get("/testimonials", public.Testimonials)
	lang.Post("/testimonials", public.SubmitTestimonial)
	lang.Get("/faq", public.FAQ)
	lang.Get("/brochure.pdf", site.Brochure)

	lang.Get("/login", authHandler.LoginPage)
	lang.Post("/login", authHandler.Login)
	lang.Post("/logout", authHandler.Logout)

	// Panel (cookie de sesión con rol admin; si no, redirect al login)
	admin := lang.Group("/admin", RequireAdminPage())
	admin.Get("/", dashboardHandler.Page)

	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.SiteName)
	admin.Get("/contact", companyHandler.EditContact)
	admin.Post("/contact", companyHandler.UpdateContact)
	admin.Get("/about", companyHandler.EditAbout)
	admin.Post("/about", companyHandler.UpdateAbout)

	serviceAdmin(deps).Register(admin)
	projectAdmin(deps).Register(admin)
	categoryAdmin(deps).Register(admin)
	advertisementAdmin(deps).Register(admin)
	faqAdmin(deps).Register(admin)
	testimonialAdmin(deps).Register(admin)
	whyChooseUsAdmin(deps).Register(admin)
	userAdmin(deps).Register(admin)
}
