package catalog

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultMoviesURL is the movie resource base used when nothing is configured
const DefaultMoviesURL = "http://localhost:8085/v1/api/RapidAPI/Disney"

// Movie routes, relative to the movie base endpoint
const (
	MovieListRoute   = "GetAll"
	MovieStatusRoute = "Mongo/changeStatus/"
	MovieSearchRoute = "API/searchFull/"
	MovieCreateRoute = "save"
	MovieUpdateRoute = "Mongo/update"
)

// MovieClient is the HTTP client of the movie resource
type MovieClient struct {
	c *client
}

var _ MovieService = (*MovieClient)(nil)

// NewMovieClient creates a movie client for the given base endpoint
func NewMovieClient(baseURL string, opts ...Option) (*MovieClient, error) {
	c, err := newClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &MovieClient{c: c}, nil
}

// ListURL returns the collection endpoint
func (m *MovieClient) ListURL() string {
	return m.c.endpoint(MovieListRoute, nil)
}

// List returns every movie in server order
func (m *MovieClient) List(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := m.c.do(ctx, OpMovieList, http.MethodGet, m.ListURL(), nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// ChangeStatus forwards status as-is; legality of the transition is the server's concern.
func (m *MovieClient) ChangeStatus(ctx context.Context, id string, status Status) error {
	if id == "" {
		return ErrEmptyID
	}
	target := m.c.endpoint(MovieStatusRoute+url.PathEscape(id), url.Values{"status": {string(status)}})
	return m.c.do(ctx, OpMovieChangeStatus, http.MethodPatch, target, nil, nil)
}

// Search queries the external movie API by name
func (m *MovieClient) Search(ctx context.Context, name string) ([]ExternalMovie, error) {
	if name == "" {
		return nil, ErrEmptyQuery
	}
	var results []ExternalMovie
	target := m.c.endpoint(MovieSearchRoute+url.PathEscape(name), nil)
	if err := m.c.do(ctx, OpMovieSearch, http.MethodGet, target, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Create stores a new movie and returns it with its server-assigned id and status
func (m *MovieClient) Create(ctx context.Context, name, description string) (Movie, error) {
	body := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{name, description}

	var created Movie
	if err := m.c.do(ctx, OpMovieCreate, http.MethodPost, m.c.endpoint(MovieCreateRoute, nil), body, &created); err != nil {
		return Movie{}, err
	}
	return created, nil
}

// Update renames and re-describes the movie currently named oldName
func (m *MovieClient) Update(ctx context.Context, oldName, name, description string) (Movie, error) {
	body := struct {
		OldName     string `json:"oldName"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}{oldName, name, description}

	var updated Movie
	if err := m.c.do(ctx, OpMovieUpdate, http.MethodPut, m.c.endpoint(MovieUpdateRoute, nil), body, &updated); err != nil {
		return Movie{}, err
	}
	return updated, nil
}
