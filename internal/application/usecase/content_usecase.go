package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/repository"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// aiTimeout límite de cada llamada al traductor; las latencias externas no deben bloquear el guardado.
const aiTimeout = 10 * time.Second

// ContentUseCase CRUD genérico de contenido bilingüe: valida el formulario F,
// rellena el árabe vacío si se pidió y construye la entidad T que persiste el backend.
type ContentUseCase[F any, T any] struct {
	repo       repository.ContentRepository[T]
	translator ports.Translator
	build      func(F) (T, error)
}

// NewContentUseCase construye el caso de uso. translator puede ser nil (sin IA).
func NewContentUseCase[F any, T any](repo repository.ContentRepository[T], translator ports.Translator, build func(F) (T, error)) *ContentUseCase[F, T] {
	return &ContentUseCase[F, T]{repo: repo, translator: translator, build: build}
}

// List devuelve todos los elementos tal como los entrega el backend.
func (uc *ContentUseCase[F, T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// Get devuelve domain.ErrNotFound si el elemento no existe.
func (uc *ContentUseCase[F, T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (uc *ContentUseCase[F, T]) Create(ctx context.Context, form F) (*T, error) {
	item, err := uc.prepare(ctx, form)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (uc *ContentUseCase[F, T]) Update(ctx context.Context, id string, form F) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.prepare(ctx, form)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (uc *ContentUseCase[F, T]) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ContentUseCase[F, T]) prepare(ctx context.Context, form F) (T, error) {
	var zero T
	if err := dto.Validate(form); err != nil {
		return zero, err
	}
	if t, ok := any(&form).(dto.Translatable); ok {
		autoTranslate(ctx, uc.translator, t)
	}
	return uc.build(form)
}

// autoTranslate rellena los campos árabes vacíos traduciendo el inglés.
// Si el traductor falla se registra un aviso y el formulario sigue su curso.
func autoTranslate(ctx context.Context, translator ports.Translator, form dto.Translatable) {
	if translator == nil || !form.WantsAutoTranslate() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	for _, f := range form.LocalizedFields() {
		if strings.TrimSpace(*f.Ar) != "" || strings.TrimSpace(*f.En) == "" {
			continue
		}
		out, err := translator.Translate(ctx, *f.En, i18n.English, i18n.Arabic)
		if err != nil {
			log.Warn().Err(err).Msg("auto-traducción no disponible; se guarda sin texto árabe")
			return
		}
		*f.Ar = strings.TrimSpace(out)
	}
}

// toggle lee el valor actual y persiste el contrario. Devuelve el nuevo valor.
func toggle[T any](ctx context.Context, repo repository.ContentRepository[T], id string, current func(T) bool, set func(ctx context.Context, id string, v bool) error) (bool, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, domain.ErrNotFound
	}
	next := !current(*item)
	if err := set(ctx, id, next); err != nil {
		return false, err
	}
	return next, nil
}
