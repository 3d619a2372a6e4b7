package restapi

import (
	"context"
	"net/http"
	"net/url"
)

// Resource colección REST genérica: GET/POST en path y GET/PUT/PATCH/DELETE en path/:id.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.Do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el backend responde 404.
func (r *Resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.Do(ctx, http.MethodGet, r.itemPath(id), nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// Create hace POST y completa item con lo que devuelva el backend (id, fechas).
func (r *Resource[T]) Create(ctx context.Context, item *T) error {
	return r.c.Do(ctx, http.MethodPost, r.path, item, item)
}

func (r *Resource[T]) Update(ctx context.Context, id string, item *T) error {
	return r.c.Do(ctx, http.MethodPut, r.itemPath(id), item, item)
}

// Patch actualización parcial (interruptores de publicación, visibilidad, aprobación).
func (r *Resource[T]) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.c.Do(ctx, http.MethodPatch, r.itemPath(id), fields, nil)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}
