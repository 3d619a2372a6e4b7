package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// memRepo repositorio en memoria que imita al backend (ids secuenciales).
type memRepo[T any] struct {
	mu      sync.Mutex
	items   []T
	id      func(*T) *string
	listErr error
	created []T
	patched map[string]bool
}

func newMemRepo[T any](id func(*T) *string, items ...T) *memRepo[T] {
	return &memRepo[T]{items: items, id: id, patched: map[string]bool{}}
}

func (r *memRepo[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]T(nil), r.items...), nil
}

func (r *memRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if *r.id(&r.items[i]) == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (r *memRepo[T]) Create(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.id(item) = fmt.Sprintf("id-%d", len(r.items)+1)
	r.items = append(r.items, *item)
	r.created = append(r.created, *item)
	return nil
}

func (r *memRepo[T]) Update(ctx context.Context, id string, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if *r.id(&r.items[i]) == id {
			*r.id(item) = id
			r.items[i] = *item
			return nil
		}
	}
	return errNotFoundBackend
}

func (r *memRepo[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if *r.id(&r.items[i]) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errNotFoundBackend
}

var errNotFoundBackend = errors.New("404")

type projectRepo struct{ *memRepo[entity.Project] }

func (r projectRepo) SetVisible(ctx context.Context, id string, v bool) error {
	r.patched[id] = v
	return nil
}

type adRepo struct{ *memRepo[entity.Advertisement] }

func (r adRepo) SetPublished(ctx context.Context, id string, v bool) error {
	r.patched[id] = v
	return nil
}

type testimonialRepo struct{ *memRepo[entity.Testimonial] }

func (r testimonialRepo) SetApproved(ctx context.Context, id string, v bool) error {
	r.patched[id] = v
	return nil
}

func serviceID(s *entity.Service) *string { return &s.ID }
func projectID(p *entity.Project) *string { return &p.ID }
func adID(a *entity.Advertisement) *string { return &a.ID }
func faqID(f *entity.FAQ) *string { return &f.ID }
func whyID(w *entity.WhyChooseUs) *string { return &w.ID }
func testimonialID(t *entity.Testimonial) *string { return &t.ID }

// companyRepo singletons en memoria.
type companyRepo struct {
	contact *entity.CompanyContact
	about   *entity.AboutSection
	err     error
}

func (r *companyRepo) GetContact(ctx context.Context) (*entity.CompanyContact, error) {
	return r.contact, r.err
}

func (r *companyRepo) SaveContact(ctx context.Context, c *entity.CompanyContact) error {
	r.contact = c
	return nil
}

func (r *companyRepo) GetAbout(ctx context.Context) (*entity.AboutSection, error) {
	return r.about, r.err
}

func (r *companyRepo) SaveAbout(ctx context.Context, a *entity.AboutSection) error {
	r.about = a
	return nil
}

// userRepo guarda la última contraseña recibida.
type userRepo struct {
	users    []entity.User
	password string
	deleted  []string
}

func (r *userRepo) List(ctx context.Context) ([]entity.User, error) { return r.users, nil }

func (r *userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Create(ctx context.Context, u *entity.User, password string) error {
	u.ID = "u-new"
	r.password = password
	r.users = append(r.users, *u)
	return nil
}

func (r *userRepo) Update(ctx context.Context, id string, u *entity.User) error {
	u.ID = id
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

// fakeTranslator antepone "AR:" o falla si err != nil.
type fakeTranslator struct {
	err   error
	calls int
}

func (f *fakeTranslator) Translate(ctx context.Context, text string, from, to i18n.Lang) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("sin timeout")
	}
	return "AR:" + text, nil
}
