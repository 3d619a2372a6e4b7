package repository

import "context"

// ContentRepository define el puerto genérico de contenido (DIP).
// La implementación vive en infrastructure/restapi; el backend externo es la fuente de verdad.
// GetByID devuelve (nil, nil) cuando el recurso no existe.
type ContentRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id string, item *T) error
	Delete(ctx context.Context, id string) error
}
