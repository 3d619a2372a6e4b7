// sitemap genera sitemap.xml y robots.txt estáticos a partir del contenido del backend,
// para despliegues donde un CDN sirve esos archivos sin pasar por el servidor web.
//
// Uso: go run ./cmd/sitemap [directorio_salida]
// Por defecto escribe en ./public. Lee la misma configuración que cmd/web (API_BASE_URL, SITE_PUBLIC_URL...).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/infrastructure/restapi"
	"github.com/jhoicas/agency-web/internal/infrastructure/sitemap"
	"github.com/jhoicas/agency-web/pkg/config"
	"github.com/jhoicas/agency-web/pkg/i18n"
	"github.com/jhoicas/agency-web/pkg/logger"
)

func main() {
	outDir := "public"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	// Solo lectura: sin traductor.
	site := usecase.NewSiteUseCase(
		usecase.NewCompanyUseCase(restapi.NewCompanyRepository(client), nil),
		usecase.NewServiceUseCase(restapi.NewServiceRepository(client), nil),
		usecase.NewProjectUseCase(restapi.NewProjectRepository(client), nil),
		usecase.NewWhyChooseUsUseCase(restapi.NewWhyChooseUsRepository(client), nil),
		usecase.NewTestimonialUseCase(restapi.NewTestimonialRepository(client)),
		usecase.NewAdvertisementUseCase(restapi.NewAdvertisementRepository(client), nil),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	defaultLang, _ := i18n.Parse(cfg.Site.DefaultLang)
	pages := site.Pages(ctx)
	xmlDoc, err := sitemap.Build(cfg.Site.PublicURL, pages, defaultLang)
	if err != nil {
		log.Fatal().Err(err).Msg("generar sitemap")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", outDir).Msg("crear directorio de salida")
	}
	sitemapPath := filepath.Join(outDir, "sitemap.xml")
	if err := os.WriteFile(sitemapPath, xmlDoc, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir sitemap.xml")
	}
	robotsPath := filepath.Join(outDir, "robots.txt")
	if err := os.WriteFile(robotsPath, []byte(sitemap.Robots(cfg.Site.PublicURL)), 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir robots.txt")
	}

	log.Info().
		Int("pages", len(pages)).
		Str("sitemap", sitemapPath).
		Str("robots", robotsPath).
		Msg("sitemap generado")
}
