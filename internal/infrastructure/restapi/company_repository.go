package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

const (
	pathCompanyContact = "/CompanyContact"
	pathAboutSection   = "/AboutSection"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo registros únicos de la empresa. El backend puede devolver el objeto
// o una lista con un solo elemento.
type CompanyRepo struct {
	c *Client
}

func NewCompanyRepository(c *Client) *CompanyRepo {
	return &CompanyRepo{c: c}
}

func (r *CompanyRepo) GetContact(ctx context.Context) (*entity.CompanyContact, error) {
	return getSingleton[entity.CompanyContact](ctx, r.c, pathCompanyContact)
}

// SaveContact PUT si ya existe (tiene id), POST si es el primero.
func (r *CompanyRepo) SaveContact(ctx context.Context, contact *entity.CompanyContact) error {
	return saveSingleton(ctx, r.c, pathCompanyContact, contact.ID, contact)
}

func (r *CompanyRepo) GetAbout(ctx context.Context) (*entity.AboutSection, error) {
	return getSingleton[entity.AboutSection](ctx, r.c, pathAboutSection)
}

func (r *CompanyRepo) SaveAbout(ctx context.Context, about *entity.AboutSection) error {
	return saveSingleton(ctx, r.c, pathAboutSection, about.ID, about)
}

func getSingleton[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("backend GET %s: %w: %v", path, domain.ErrUpstream, err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("backend GET %s: %w: %v", path, domain.ErrUpstream, err)
	}
	return &out, nil
}

func saveSingleton(ctx context.Context, c *Client, path, id string, item any) error {
	if id == "" {
		return c.Do(ctx, http.MethodPost, path, item, item)
	}
	return c.Do(ctx, http.MethodPut, path+"/"+url.PathEscape(id), item, item)
}
