package http

import (
	"embed"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed assets
var assetsFS embed.FS

// Assets sirve los estáticos embebidos en el binario bajo /assets.
func Assets() fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:       nethttp.FS(assetsFS),
		PathPrefix: "assets",
		MaxAge:     86400,
	})
}
