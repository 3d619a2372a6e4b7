package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// crudUseCase operaciones que el panel necesita de cada caso de uso de contenido.
type crudUseCase[F any, T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, form F) (*T, error)
	Update(ctx context.Context, id string, form F) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ContentHandler CRUD genérico del panel para una colección del backend.
// Tras cada mutación se guarda un flash y se redirige al listado, que vuelve a consultar.
type ContentHandler[F any, T any] struct {
	slug          string
	titleKey      string
	siteName      string
	uc            crudUseCase[F, T]
	toForm        func(T) F
	row           func(p views.Page, item T) views.Row
	columns       []string // claves i18n de las columnas
	fields        func(c *fiber.Ctx, p views.Page, form F) []views.Field
	autoTranslate bool

	// Opcionales.
	search  func(c *fiber.Ctx, p views.Page) ([]T, g.Node, error)
	toggle  func(ctx context.Context, id string) (bool, error)
	remove  func(c *fiber.Ctx, id string) error
	newForm func() F
}

func (h *ContentHandler[F, T]) base(c *fiber.Ctx) string {
	return "/" + GetLang(c).String() + "/admin/" + h.slug
}

func (h *ContentHandler[F, T]) page(c *fiber.Ctx) views.Page {
	return pageFor(c, h.siteName, GetTranslator(c).T(h.titleKey))
}

// Register monta las rutas de la colección bajo r (grupo /:lang/admin).
func (h *ContentHandler[F, T]) Register(r fiber.Router) {
	grp := r.Group("/" + h.slug)
	grp.Get("/", h.List)
	grp.Get("/new", h.New)
	grp.Post("/", h.Create)
	grp.Get("/:id/edit", h.Edit)
	grp.Post("/:id", h.Update)
	grp.Post("/:id/delete", h.Delete)
	if h.toggle != nil {
		grp.Post("/:id/toggle", h.Toggle)
	}
}

func (h *ContentHandler[F, T]) List(c *fiber.Ctx) error {
	p := h.page(c)
	var (
		items   []T
		filters g.Node
		err     error
	)
	if h.search != nil {
		items, filters, err = h.search(c, p)
	} else {
		items, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return err
	}
	tr := p.T
	columns := make([]string, 0, len(h.columns))
	for _, k := range h.columns {
		columns = append(columns, tr.T(k))
	}
	rows := make([]views.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, h.row(p, it))
	}
	return render(c, views.ListPage(p, views.ListView{
		Title:   p.Title,
		Base:    h.base(c),
		Columns: columns,
		Rows:    rows,
		Filters: filters,
	}))
}

func (h *ContentHandler[F, T]) New(c *fiber.Ctx) error {
	var form F
	if h.newForm != nil {
		form = h.newForm()
	}
	return h.renderForm(c, form, h.base(c), nil)
}

func (h *ContentHandler[F, T]) Create(c *fiber.Ctx) error {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, err := h.uc.Create(c.UserContext(), form)
	return h.afterMutation(c, err, form, h.base(c), "flash.created")
}

func (h *ContentHandler[F, T]) Edit(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		SetFlash(c, "error", "flash.notfound")
		return c.Redirect(h.base(c), fiber.StatusSeeOther)
	}
	if err != nil {
		return err
	}
	return h.renderForm(c, h.toForm(*item), h.base(c)+"/"+c.Params("id"), nil)
}

func (h *ContentHandler[F, T]) Update(c *fiber.Ctx) error {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	id := c.Params("id")
	_, err := h.uc.Update(c.UserContext(), id, form)
	return h.afterMutation(c, err, form, h.base(c)+"/"+id, "flash.updated")
}

func (h *ContentHandler[F, T]) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	var err error
	if h.remove != nil {
		err = h.remove(c, id)
	} else {
		err = h.uc.Delete(c.UserContext(), id)
	}
	var zero F
	return h.afterMutation(c, err, zero, "", "flash.deleted")
}

// Toggle invierte publicado/visible/aprobado.
func (h *ContentHandler[F, T]) Toggle(c *fiber.Ctx) error {
	_, err := h.toggle(c.UserContext(), c.Params("id"))
	var zero F
	return h.afterMutation(c, err, zero, "", "flash.toggled")
}

// afterMutation decide la respuesta de una escritura: formulario con errores (422),
// o flash y redirect al listado.
func (h *ContentHandler[F, T]) afterMutation(c *fiber.Ctx, err error, form F, action, okKey string) error {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		SetFlash(c, "success", okKey)
	case errors.As(err, &ve) && action != "":
		c.Status(fiber.StatusUnprocessableEntity)
		return h.renderForm(c, form, action, ve.Fields)
	case errors.Is(err, domain.ErrNotFound):
		SetFlash(c, "error", "flash.notfound")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidInput):
		SetFlash(c, "error", "flash.error")
	case errors.Is(err, domain.ErrUnauthorized):
		expireSession(c)
		return redirectToLogin(c, h.base(c))
	default:
		GetLogger(c).Error().Err(err).Str("collection", h.slug).Msg("operación del panel fallida")
		SetFlash(c, "error", "flash.error")
	}
	return c.Redirect(h.base(c), fiber.StatusSeeOther)
}

func (h *ContentHandler[F, T]) renderForm(c *fiber.Ctx, form F, action string, errs map[string]string) error {
	p := h.page(c)
	return render(c, views.FormPage(p, views.FormView{
		Title:         p.Title,
		Action:        action,
		Cancel:        h.base(c),
		Fields:        h.fields(c, p, form),
		Errors:        errs,
		AutoTranslate: h.autoTranslate,
	}))
}
