package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/agency-web/internal/application/analytics"
	"github.com/jhoicas/agency-web/internal/application/auth"
	"github.com/jhoicas/agency-web/internal/application/brochure"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	infraai "github.com/jhoicas/agency-web/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/agency-web/internal/infrastructure/pdf"
	"github.com/jhoicas/agency-web/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/agency-web/internal/interfaces/http"
	"github.com/jhoicas/agency-web/pkg/config"
	"github.com/jhoicas/agency-web/pkg/i18n"
	"github.com/jhoicas/agency-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	// Todo el contenido vive en el backend REST; este proceso no guarda estado.
	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	companyRepo := restapi.NewCompanyRepository(client)
	serviceRepo := restapi.NewServiceRepository(client)
	projectRepo := restapi.NewProjectRepository(client)
	categoryRepo := restapi.NewCategoryRepository(client)
	adRepo := restapi.NewAdvertisementRepository(client)
	faqRepo := restapi.NewFAQRepository(client)
	testimonialRepo := restapi.NewTestimonialRepository(client)
	whyRepo := restapi.NewWhyChooseUsRepository(client)
	userRepo := restapi.NewUserRepository(client)

	// nil si AI_PROVIDER=none: los formularios guardan sin autotraducción.
	translator := infraai.NewTranslator(
		cfg.AI.Provider,
		cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel,
		cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel,
	)
	if translator == nil {
		log.Warn().Msg("traducción asistida deshabilitada")
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo, translator)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, translator)
	projectUC := usecase.NewProjectUseCase(projectRepo, translator)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, translator)
	adUC := usecase.NewAdvertisementUseCase(adRepo, translator)
	faqUC := usecase.NewFAQUseCase(faqRepo, translator)
	testimonialUC := usecase.NewTestimonialUseCase(testimonialRepo)
	whyUC := usecase.NewWhyChooseUsUseCase(whyRepo, translator)
	userUC := usecase.NewUserUseCase(userRepo)
	aiUC := usecase.NewAIUseCase(translator)
	siteUC := usecase.NewSiteUseCase(companyUC, serviceUC, projectUC, whyUC, testimonialUC, adUC)

	dashboardUC := appanalytics.NewDashboardUseCase(appanalytics.Sources{
		Services:     serviceRepo,
		Projects:     projectRepo,
		Categories:   categoryRepo,
		Ads:          adRepo,
		FAQs:         faqRepo,
		Testimonials: testimonialRepo,
		Users:        userRepo,
	})

	// PDF: perfil de la empresa descargable desde el pie de página
	brochureUC := brochure.NewPDFUseCase(
		companyRepo, serviceRepo, projectRepo, whyRepo,
		infrapdf.NewMarotoPDFGenerator(),
		cfg.Site.Name, cfg.Site.PublicURL,
	)
	authUC := auth.NewAuthUseCase(restapi.NewAuthGateway(client), auth.JWTConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})

	defaultLang, _ := i18n.Parse(cfg.Site.DefaultLang)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(cfg.Site.Name),
	})
	app.Use(recover.New())

	// Swagger UI de la API JSON: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    cfg.Site.Name + " API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		SiteUC:          siteUC,
		CompanyUC:       companyUC,
		ServiceUC:       serviceUC,
		ProjectUC:       projectUC,
		CategoryUC:      categoryUC,
		AdvertisementUC: adUC,
		FAQUC:           faqUC,
		TestimonialUC:   testimonialUC,
		WhyChooseUsUC:   whyUC,
		UserUC:          userUC,
		AIUC:            aiUC,
		AuthUC:          authUC,
		DashboardUC:     dashboardUC,
		BrochureUC:      brochureUC,

		Log:             log,
		AppName:         cfg.App.Name,
		SiteName:        cfg.Site.Name,
		PublicURL:       cfg.Site.PublicURL,
		DefaultLang:     defaultLang,
		DefaultCurrency: cfg.Site.Currency,
		JWTSecret:       cfg.Session.Secret,
		Session: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
