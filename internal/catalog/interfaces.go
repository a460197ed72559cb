package catalog

import "context"

// MovieService is the movie resource as consumed by the panels.
// Updates are keyed by the movie's current name, not its id.
type MovieService interface {
	List(ctx context.Context) ([]Movie, error)
	ChangeStatus(ctx context.Context, id string, status Status) error
	Search(ctx context.Context, name string) ([]ExternalMovie, error)
	Create(ctx context.Context, name, description string) (Movie, error)
	Update(ctx context.Context, oldName, name, description string) (Movie, error)
}

// LanguageService is the language resource as consumed by the panels.
// Updates are keyed by id.
type LanguageService interface {
	List(ctx context.Context) ([]Language, error)
	ChangeStatus(ctx context.Context, id string, status Status) error
	CreateFromExternal(ctx context.Context, in LanguageInput) (Language, error)
	Update(ctx context.Context, id string, in LanguageInput) (Language, error)
	ListExternal(ctx context.Context) ([]ExternalLanguage, error)
}
