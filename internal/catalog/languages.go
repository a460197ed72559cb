package catalog

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultLanguagesURL is the language resource base used when nothing is configured
const DefaultLanguagesURL = "http://localhost:8085/v1/api/netflix/languages"

// Language routes, relative to the language base endpoint
const (
	LanguageListRoute     = "db/GetAll"
	LanguageStatusRoute   = "db/changeStatus/"
	LanguageCreateRoute   = "db/save"
	LanguageUpdateRoute   = "db/update/"
	LanguageExternalRoute = "api"
)

// LanguageClient is the HTTP client of the language resource
type LanguageClient struct {
	c *client
}

var _ LanguageService = (*LanguageClient)(nil)

// NewLanguageClient creates a language client for the given base endpoint
func NewLanguageClient(baseURL string, opts ...Option) (*LanguageClient, error) {
	c, err := newClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &LanguageClient{c: c}, nil
}

// ListURL returns the local-store collection endpoint
func (l *LanguageClient) ListURL() string {
	return l.c.endpoint(LanguageListRoute, nil)
}

// ExternalURL returns the third-party catalog passthrough endpoint
func (l *LanguageClient) ExternalURL() string {
	return l.c.endpoint(LanguageExternalRoute, nil)
}

// List returns the languages of the local store
func (l *LanguageClient) List(ctx context.Context) ([]Language, error) {
	var languages []Language
	if err := l.c.do(ctx, OpLanguageList, http.MethodGet, l.ListURL(), nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// ChangeStatus sets the status of the language with the given id
func (l *LanguageClient) ChangeStatus(ctx context.Context, id string, status Status) error {
	if id == "" {
		return ErrEmptyID
	}
	target := l.c.endpoint(LanguageStatusRoute+url.PathEscape(id), url.Values{"status": {string(status)}})
	return l.c.do(ctx, OpLanguageStatus, http.MethodPatch, target, nil, nil)
}

// CreateFromExternal stores a language record, typically one picked from the external catalog
func (l *LanguageClient) CreateFromExternal(ctx context.Context, in LanguageInput) (Language, error) {
	var created Language
	if err := l.c.do(ctx, OpLanguageCreate, http.MethodPost, l.c.endpoint(LanguageCreateRoute, nil), in, &created); err != nil {
		return Language{}, err
	}
	return created, nil
}

// Update replaces the editable fields of the language with the given id
func (l *LanguageClient) Update(ctx context.Context, id string, in LanguageInput) (Language, error) {
	if id == "" {
		return Language{}, ErrEmptyID
	}
	var updated Language
	target := l.c.endpoint(LanguageUpdateRoute+url.PathEscape(id), nil)
	if err := l.c.do(ctx, OpLanguageUpdate, http.MethodPut, target, in, &updated); err != nil {
		return Language{}, err
	}
	return updated, nil
}

// ListExternal reads the third-party language catalog without touching the local store
func (l *LanguageClient) ListExternal(ctx context.Context) ([]ExternalLanguage, error) {
	var languages []ExternalLanguage
	if err := l.c.do(ctx, OpLanguageListCatalog, http.MethodGet, l.ExternalURL(), nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}
