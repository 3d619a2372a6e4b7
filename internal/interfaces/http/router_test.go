package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/agency-web/internal/application/analytics"
	"github.com/jhoicas/agency-web/internal/application/auth"
	"github.com/jhoicas/agency-web/internal/application/brochure"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	infrapdf "github.com/jhoicas/agency-web/internal/infrastructure/pdf"
	"github.com/jhoicas/agency-web/internal/infrastructure/restapi"
	apphttp "github.com/jhoicas/agency-web/internal/interfaces/http"
	"github.com/jhoicas/agency-web/pkg/i18n"
	pkgjwt "github.com/jhoicas/agency-web/pkg/jwt"
)

const sessionCookie = "agency_session"

// backendCall petición recibida por el backend falso.
type backendCall struct {
	Method, Path, Auth string
	Body               map[string]any
}

// fakeBackend backend REST en memoria: responde por "METHOD /ruta" y registra las llamadas.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]string
	statuses map[string]int // código distinto de 200 por ruta
	calls    []backendCall
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := backendCall{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}
	b.mu.Lock()
	b.calls = append(b.calls, call)
	body, ok := b.routes[r.Method+" "+r.URL.Path]
	status := b.statuses[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
		return
	}
	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = w.Write([]byte(body))
}

func (b *fakeBackend) find(method, path string) (backendCall, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.calls {
		if c.Method == method && c.Path == path {
			return c, true
		}
	}
	return backendCall{}, false
}

// newSite arma la aplicación completa contra un backend falso con las rutas dadas.
func newSite(t *testing.T, routes map[string]string) (*fiber.App, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{routes: routes}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	client := restapi.NewClient(srv.URL+"/api", 2*time.Second)
	companyRepo := restapi.NewCompanyRepository(client)
	serviceRepo := restapi.NewServiceRepository(client)
	projectRepo := restapi.NewProjectRepository(client)
	categoryRepo := restapi.NewCategoryRepository(client)
	adRepo := restapi.NewAdvertisementRepository(client)
	faqRepo := restapi.NewFAQRepository(client)
	testimonialRepo := restapi.NewTestimonialRepository(client)
	whyRepo := restapi.NewWhyChooseUsRepository(client)
	userRepo := restapi.NewUserRepository(client)

	companyUC := usecase.NewCompanyUseCase(companyRepo, nil)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, nil)
	projectUC := usecase.NewProjectUseCase(projectRepo, nil)
	adUC := usecase.NewAdvertisementUseCase(adRepo, nil)
	testimonialUC := usecase.NewTestimonialUseCase(testimonialRepo)
	whyUC := usecase.NewWhyChooseUsUseCase(whyRepo, nil)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler("Acme")})
	apphttp.Router(app, apphttp.RouterDeps{
		SiteUC:          usecase.NewSiteUseCase(companyUC, serviceUC, projectUC, whyUC, testimonialUC, adUC),
		CompanyUC:       companyUC,
		ServiceUC:       serviceUC,
		ProjectUC:       projectUC,
		CategoryUC:      usecase.NewCategoryUseCase(categoryRepo, nil),
		AdvertisementUC: adUC,
		FAQUC:           usecase.NewFAQUseCase(faqRepo, nil),
		TestimonialUC:   testimonialUC,
		WhyChooseUsUC:   whyUC,
		UserUC:          usecase.NewUserUseCase(userRepo),
		AIUC:            usecase.NewAIUseCase(nil),
		AuthUC: auth.NewAuthUseCase(restapi.NewAuthGateway(client), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		DashboardUC: appanalytics.NewDashboardUseCase(appanalytics.Sources{
			Services: serviceRepo, Projects: projectRepo, Categories: categoryRepo, Ads: adRepo,
			FAQs: faqRepo, Testimonials: testimonialRepo, Users: userRepo,
		}),
		BrochureUC: brochure.NewPDFUseCase(companyRepo, serviceRepo, projectRepo, whyRepo,
			infrapdf.NewMarotoPDFGenerator(), "Acme", "https://acme.example.com"),

		AppName:         "agency-web",
		SiteName:        "Acme",
		PublicURL:       "https://acme.example.com",
		DefaultLang:     i18n.English,
		DefaultCurrency: "SAR",
		JWTSecret:       testJWTSecret,
		Session:         apphttp.SessionCookie{Name: sessionCookie},
	})
	return app, fb
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Session{
		UserID: "u1", Name: "Admin", Role: "admin", APIToken: "backend-tok",
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookie, Value: tok}
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(raw)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func cookieValue(resp *http.Response, name string) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// ──────────────────────────────────────────────────────────────────────────────
// Idioma y páginas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestRoot_RedirigeSegunAcceptLanguage(t *testing.T) {
	app, _ := newSite(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ar-SA,ar;q=0.9,en;q=0.5")
	resp, _ := send(t, app, req)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/ar/", resp.Header.Get("Location"))

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "/en/", resp.Header.Get("Location"), "sin cabecera se usa el idioma por defecto")
}

func TestIdiomaDesconocido_Es404(t *testing.T) {
	app, _ := newSite(t, nil)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/fr/services", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<html")
}

func TestHome_ToleraSeccionesCaidas(t *testing.T) {
	// Solo responden los servicios; el resto de secciones falla con 404 en el backend.
	app, _ := newSite(t, map[string]string{
		"GET /api/service": `[{"_id":"s1","titleEn":"Branding","titleAr":"الهوية","order":1}]`,
	})

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/ar/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ar", resp.Header.Get("Content-Language"))
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "الهوية")
}

func TestProyectoOculto_Es404(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"GET /api/project/p2": `{"_id":"p2","titleEn":"Secret","isVisible":false}`,
	})

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/en/projects/p2", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, body, "Secret")
}

// ──────────────────────────────────────────────────────────────────────────────
// API JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := newSite(t, nil)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"agency-web"}`, body)
}

func TestAPIAdvertisements_SoloPublicosYLocalizados(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"GET /api/advertisement": `[
			{"_id":"a1","titleEn":"Car","titleAr":"سيارة","price":100,"isPublished":true,"createdAt":"2024-01-02T00:00:00Z"},
			{"_id":"a2","titleEn":"Draft","price":50,"isPublished":false},
			{"_id":"a3","titleEn":"Old","price":70,"isPublished":true,"expiresAt":"2001-01-01T00:00:00Z"}
		]`,
	})

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/advertisements?lang=ar", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AdvertisementListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "a1", out.Items[0].ID)
	assert.Equal(t, "سيارة", out.Items[0].Title)
	assert.Equal(t, "100.00", out.Items[0].Price)
	assert.Equal(t, "ar", out.Lang)
	assert.Equal(t, "newest", out.Sort)
}

func TestAPIAdvertisements_BackendCaido_502(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"GET /api/advertisement": `{"message":"mongo: connection refused at 10.0.0.5:27017"}`,
	})
	fb.statuses = map[string]int{"GET /api/advertisement": http.StatusInternalServerError}

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/advertisements", nil))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "UPSTREAM", out.Code)
	assert.Equal(t, i18n.NewTranslator(i18n.English).T("error.unavailable"), out.Message)
	assert.NotContains(t, body, "mongo", "el detalle del backend solo va al log")
	assert.NotContains(t, body, "10.0.0.5")
}

func TestAPIDashboard_RequiereBearer(t *testing.T) {
	app, _ := newSite(t, nil)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "MISSING_TOKEN")
}

func TestAPIDashboard_CuentaColecciones(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"GET /api/service":       `[{"_id":"s1"},{"_id":"s2"}]`,
		"GET /api/project":       `[{"_id":"p1","isVisible":true},{"_id":"p2"}]`,
		"GET /api/category":      `[]`,
		"GET /api/advertisement": `[{"_id":"a1","isPublished":true,"price":1}]`,
		"GET /api/FAQ":           `[]`,
		"GET /api/testimonial":   `[{"_id":"t1","isApproved":false}]`,
		"GET /api/auth/users":    `[{"_id":"u1","role":"admin"}]`,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminCookie(t).Value)
	resp, body := send(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var out dto.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, 2, out.Services)
	assert.Equal(t, 1, out.VisibleProjects)
	assert.Equal(t, 1, out.PendingTestimonials)
	assert.Equal(t, 1, out.Users)

	call, ok := fb.find(http.MethodGet, "/api/auth/users")
	require.True(t, ok)
	assert.Equal(t, "Bearer backend-tok", call.Auth, "se reenvía el token del backend guardado en la sesión")
}

func TestAPILogin_CredencialesInvalidas(t *testing.T) {
	app, _ := newSite(t, map[string]string{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, body := send(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "UNAUTHORIZED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login y panel
// ──────────────────────────────────────────────────────────────────────────────

func TestPanel_SinSesionRedirigeAlLogin(t *testing.T) {
	app, _ := newSite(t, nil)

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/en/admin/services", nil))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/login?next=%2Fen%2Fadmin%2Fservices", resp.Header.Get("Location"))
}

func TestLogin_AdminRecibeCookieYVaAlDestino(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"POST /api/auth/login": `{"token":"backend-tok","user":{"_id":"u1","name":"Admin","email":"admin@acme.com","role":"admin"}}`,
	})

	resp, _ := send(t, app, postForm("/en/login", url.Values{
		"email":    {"Admin@Acme.com"},
		"password": {"secret"},
		"next":     {"/en/admin/projects"},
	}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/admin/projects", resp.Header.Get("Location"))

	tok, ok := cookieValue(resp, sessionCookie)
	require.True(t, ok, "se fija la cookie de sesión")
	sess, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Role)
	assert.Equal(t, "backend-tok", sess.APIToken)
}

func TestLogin_NextExternoSeIgnora(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"POST /api/auth/login": `{"token":"backend-tok","user":{"_id":"u1","role":"admin"}}`,
	})

	resp, _ := send(t, app, postForm("/ar/login", url.Values{
		"email":    {"admin@acme.com"},
		"password": {"secret"},
		"next":     {"//evil.example.com"},
	}))
	assert.Equal(t, "/ar/admin", resp.Header.Get("Location"))
}

func TestLogin_NoAdmin_403(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"POST /api/auth/login": `{"token":"backend-tok","user":{"_id":"u2","role":"user"}}`,
	})

	resp, body := send(t, app, postForm("/en/login", url.Values{
		"email":    {"user@acme.com"},
		"password": {"secret"},
	}))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "<form")
	_, ok := cookieValue(resp, sessionCookie)
	assert.False(t, ok)
}

func TestPanel_ToggleProyecto(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"GET /api/project/p1":   `{"_id":"p1","titleEn":"Site","isVisible":true}`,
		"PATCH /api/project/p1": `{}`,
	})

	req := postForm("/en/admin/projects/p1/toggle", url.Values{})
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/admin/projects", resp.Header.Get("Location"))
	flash, ok := cookieValue(resp, "flash")
	require.True(t, ok)
	assert.Equal(t, "success:flash.toggled", flash)

	call, ok := fb.find(http.MethodPatch, "/api/project/p1")
	require.True(t, ok, "el cambio se envía como PATCH parcial")
	assert.Equal(t, false, call.Body["isVisible"])
	assert.Equal(t, "Bearer backend-tok", call.Auth)
}

func TestPanel_CrearServicioInvalidoMuestraErrores(t *testing.T) {
	app, fb := newSite(t, nil)

	req := postForm("/en/admin/services", url.Values{"titleEn": {""}})
	req.AddCookie(adminCookie(t))
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "<form")
	_, called := fb.find(http.MethodPost, "/api/service")
	assert.False(t, called, "un formulario inválido no llega al backend")
}

func TestPanel_TokenDelBackendRechazado_BorraSesion(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"POST /api/service": `{"message":"jwt expired"}`,
	})
	fb.statuses = map[string]int{"POST /api/service": http.StatusUnauthorized}

	req := postForm("/en/admin/services", url.Values{"titleEn": {"SEO"}, "descriptionEn": {"Posicionamiento"}})
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/login?next=%2Fen%2Fadmin%2Fservices", resp.Header.Get("Location"))
	v, ok := cookieValue(resp, sessionCookie)
	require.True(t, ok, "la respuesta borra la cookie de sesión")
	assert.Empty(t, v)

	// Sin la cookie, el login muestra el formulario en vez de volver al panel.
	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, resp.Header.Get("Location"), nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<form")
}

func TestPanel_ListadoCon401_RedirigeAlLogin(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"GET /api/service": `{"message":"jwt expired"}`,
	})
	fb.statuses = map[string]int{"GET /api/service": http.StatusUnauthorized}

	req := httptest.NewRequest(http.MethodGet, "/ar/admin/services", nil)
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/ar/login?next=%2Far%2Fadmin%2Fservices", resp.Header.Get("Location"))
	v, ok := cookieValue(resp, sessionCookie)
	require.True(t, ok)
	assert.Empty(t, v)
}

func TestPanel_EditarInexistenteVuelveAlListado(t *testing.T) {
	app, _ := newSite(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/en/admin/faqs/nope/edit", nil)
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/admin/faqs", resp.Header.Get("Location"))
	flash, _ := cookieValue(resp, "flash")
	assert.Equal(t, "error:flash.notfound", flash)
}

func TestPanel_AdminNoPuedeBorrarseASiMismo(t *testing.T) {
	app, fb := newSite(t, map[string]string{"DELETE /api/auth/users/u1": `{}`})

	req := postForm("/en/admin/users/u1/delete", url.Values{})
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/admin/users", resp.Header.Get("Location"))
	flash, _ := cookieValue(resp, "flash")
	assert.Equal(t, "error:flash.error", flash)
	_, called := fb.find(http.MethodDelete, "/api/auth/users/u1")
	assert.False(t, called)
}

func TestPanel_ContactoEditarYGuardar(t *testing.T) {
	app, fb := newSite(t, map[string]string{
		"GET /api/CompanyContact":    `{"_id":"c1","phone":"+966 555 0100","email":"info@acme.com"}`,
		"PUT /api/CompanyContact/c1": `{"_id":"c1"}`,
	})

	req := httptest.NewRequest(http.MethodGet, "/en/admin/contact", nil)
	req.AddCookie(adminCookie(t))
	resp, body := send(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "+966 555 0100")

	req = postForm("/en/admin/contact", url.Values{"phone": {"+966 555 0199"}, "facebook": {"https://facebook.com/acme"}})
	req.AddCookie(adminCookie(t))
	resp, _ = send(t, app, req)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/admin/contact", resp.Header.Get("Location"))
	flash, _ := cookieValue(resp, "flash")
	assert.Equal(t, "success:flash.updated", flash)

	call, ok := fb.find(http.MethodPut, "/api/CompanyContact/c1")
	require.True(t, ok, "se conserva el id del registro existente")
	assert.Equal(t, "+966 555 0199", call.Body["phone"])
}

func TestPanel_ContactoRechazaEnlacesJavascript(t *testing.T) {
	app, fb := newSite(t, map[string]string{"GET /api/CompanyContact": `{"_id":"c1"}`})

	req := postForm("/en/admin/contact", url.Values{"facebook": {"javascript:alert(1)"}})
	req.AddCookie(adminCookie(t))
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "<form")
	_, called := fb.find(http.MethodPut, "/api/CompanyContact/c1")
	assert.False(t, called)
}

func TestPanel_AboutCon401_BorraSesion(t *testing.T) {
	app, fb := newSite(t, map[string]string{"GET /api/AboutSection": `{"message":"jwt expired"}`})
	fb.statuses = map[string]int{"GET /api/AboutSection": http.StatusUnauthorized}

	req := postForm("/en/admin/about", url.Values{"titleEn": {"About us"}, "contentEn": {"We build websites."}})
	req.AddCookie(adminCookie(t))
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/login?next=%2Fen%2Fadmin%2Fabout", resp.Header.Get("Location"))
	v, ok := cookieValue(resp, sessionCookie)
	require.True(t, ok)
	assert.Empty(t, v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Opiniones públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestTestimonio_InvalidoSeVuelveAMostrar(t *testing.T) {
	app, fb := newSite(t, map[string]string{"GET /api/testimonial": `[]`})

	resp, body := send(t, app, postForm("/en/testimonials", url.Values{"name": {"  "}, "message": {"corto"}, "rating": {"5"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "<form")
	assert.Contains(t, body, "corto", "se conserva lo escrito")
	_, called := fb.find(http.MethodPost, "/api/testimonial")
	assert.False(t, called)
}

func TestTestimonio_EnvioRedirigeYQuedaSinAprobar(t *testing.T) {
	app, fb := newSite(t, map[string]string{"POST /api/testimonial": `{"_id":"t9"}`})

	resp, _ := send(t, app, postForm("/ar/testimonials", url.Values{
		"name":       {"Sara"},
		"message":    {"Excelente servicio y muy buena atención."},
		"rating":     {"5"},
		"isApproved": {"true"},
	}))

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/ar/testimonials?sent=1", resp.Header.Get("Location"))

	call, ok := fb.find(http.MethodPost, "/api/testimonial")
	require.True(t, ok)
	assert.Equal(t, false, call.Body["isApproved"], "una opinión pública nunca llega aprobada")
	assert.Equal(t, "ar", call.Body["lang"])
}

func TestFlash_SeMuestraUnaVez(t *testing.T) {
	app, _ := newSite(t, map[string]string{"GET /api/FAQ": `[]`})

	req := httptest.NewRequest(http.MethodGet, "/en/faq", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "success:flash.created"})
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, i18n.NewTranslator(i18n.English).T("flash.created"))
	v, ok := cookieValue(resp, "flash")
	assert.True(t, ok)
	assert.Empty(t, v, "la cookie flash se consume")
}

func TestSitemapYRobots(t *testing.T) {
	app, _ := newSite(t, map[string]string{
		"GET /api/service":       `[{"_id":"s1"}]`,
		"GET /api/project":       `[]`,
		"GET /api/advertisement": `[]`,
	})

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, body, "https://acme.example.com/ar/services/s1")

	resp, body = send(t, app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Disallow: /en/admin")
}

func TestAPITranslate_SinProveedor_503(t *testing.T) {
	app, _ := newSite(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/translate", strings.NewReader(`{"text":"Hello","from":"en","to":"ar"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+adminCookie(t).Value)
	resp, body := send(t, app, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, "FEATURE_DISABLED")
}
