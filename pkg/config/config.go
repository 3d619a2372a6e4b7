package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del sitio (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Site    SiteConfig
	API     APIConfig
	Session SessionConfig
	AI      AIConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// IsDevelopment indica si la app corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SiteConfig datos públicos del sitio (URL canónica para sitemap, PDF y enlaces absolutos).
type SiteConfig struct {
	Name        string
	PublicURL   string // https://agencia.example.com (sin barra final)
	DefaultLang string // en | ar
	Currency    string // moneda por defecto de los anuncios nuevos
}

// APIConfig backend REST externo que posee todo el contenido.
type APIConfig struct {
	BaseURL        string // ej. https://api.agencia.example.com/api
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición al backend.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig firma de la cookie de sesión (JWT HS256 propio del sitio).
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
	CookieName string
	Secure     bool // cookie solo por HTTPS
}

// AIConfig proveedor de traducción asistida para el contenido árabe.
type AIConfig struct {
	Provider        string // anthropic | gemini | none
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
}

// DocsConfig Swagger UI para la API JSON /api/v1.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "agency-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Site: SiteConfig{
			Name:        getString(v, "SITE_NAME", "Agency"),
			PublicURL:   strings.TrimRight(getString(v, "SITE_PUBLIC_URL", "http://localhost:3000"), "/"),
			DefaultLang: getString(v, "SITE_DEFAULT_LANG", "en"),
			Currency:    strings.ToUpper(getString(v, "SITE_CURRENCY", "SAR")),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:5000/api"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 10),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "agency-web"),
			CookieName: getString(v, "SESSION_COOKIE_NAME", "agency_session"),
			Secure:     getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "none")),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Docs: DocsConfig{
			Enabled:  getBool(v, "DOCS_ENABLED", true),
			FilePath: getString(v, "DOCS_FILE_PATH", "./docs/swagger.json"),
		},
	}

	if cfg.Session.Secret == "" {
		if !cfg.App.IsDevelopment() {
			return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio en %s", cfg.App.Env)
		}
		// Solo desarrollo: las sesiones no sobreviven a un reinicio con otro secreto.
		cfg.Session.Secret = "dev-insecure-session-secret"
	}
	if cfg.Site.DefaultLang != "en" && cfg.Site.DefaultLang != "ar" {
		return nil, fmt.Errorf("config: SITE_DEFAULT_LANG inválido %q (en|ar)", cfg.Site.DefaultLang)
	}
	switch cfg.AI.Provider {
	case "anthropic", "gemini", "none":
	default:
		return nil, fmt.Errorf("config: AI_PROVIDER inválido %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
