package catalog

import (
	"context"
	"sync"
)

// FakeMovieService implements MovieService for testing.
// Configure behavior via function fields, and track calls via the Calls struct.
type FakeMovieService struct {
	mu sync.Mutex

	// ListFunc optionally configures List behavior. If nil, returns no movies.
	ListFunc func(ctx context.Context) ([]Movie, error)

	ChangeStatusFunc func(ctx context.Context, id string, status Status) error
	SearchFunc       func(ctx context.Context, name string) ([]ExternalMovie, error)

	// CreateFunc optionally configures Create behavior.
	// If nil, echoes the input back with status A.
	CreateFunc func(ctx context.Context, name, description string) (Movie, error)

	// UpdateFunc optionally configures Update behavior.
	// If nil, echoes the new fields back with status A.
	UpdateFunc func(ctx context.Context, oldName, name, description string) (Movie, error)

	// Calls tracks all method invocations for assertions.
	Calls struct {
		List         int
		ChangeStatus []StatusCall
		Search       []string
		Create       []MovieCall
		Update       []MovieCall
	}
}

// StatusCall records a call to ChangeStatus.
type StatusCall struct {
	ID     string
	Status Status
}

// MovieCall records a call to Create or Update. OldName is empty for Create.
type MovieCall struct {
	OldName     string
	Name        string
	Description string
}

func (f *FakeMovieService) List(ctx context.Context) ([]Movie, error) {
	f.mu.Lock()
	f.Calls.List++
	f.mu.Unlock()
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeMovieService) ChangeStatus(ctx context.Context, id string, status Status) error {
	f.mu.Lock()
	f.Calls.ChangeStatus = append(f.Calls.ChangeStatus, StatusCall{id, status})
	f.mu.Unlock()
	if f.ChangeStatusFunc != nil {
		return f.ChangeStatusFunc(ctx, id, status)
	}
	return nil
}

func (f *FakeMovieService) Search(ctx context.Context, name string) ([]ExternalMovie, error) {
	f.mu.Lock()
	f.Calls.Search = append(f.Calls.Search, name)
	f.mu.Unlock()
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, name)
	}
	return nil, nil
}

func (f *FakeMovieService) Create(ctx context.Context, name, description string) (Movie, error) {
	f.mu.Lock()
	f.Calls.Create = append(f.Calls.Create, MovieCall{Name: name, Description: description})
	f.mu.Unlock()
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, name, description)
	}
	return Movie{Name: name, Description: description, Status: StatusActive}, nil
}

func (f *FakeMovieService) Update(ctx context.Context, oldName, name, description string) (Movie, error) {
	f.mu.Lock()
	f.Calls.Update = append(f.Calls.Update, MovieCall{oldName, name, description})
	f.mu.Unlock()
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, oldName, name, description)
	}
	return Movie{Name: name, Description: description, Status: StatusActive}, nil
}

// WithMovies configures List to return the given movies.
func (f *FakeMovieService) WithMovies(movies ...Movie) *FakeMovieService {
	f.ListFunc = func(context.Context) ([]Movie, error) {
		return append([]Movie(nil), movies...), nil
	}
	return f
}

// FakeLanguageService implements LanguageService for testing.
type FakeLanguageService struct {
	mu sync.Mutex

	ListFunc               func(ctx context.Context) ([]Language, error)
	ChangeStatusFunc       func(ctx context.Context, id string, status Status) error
	CreateFromExternalFunc func(ctx context.Context, in LanguageInput) (Language, error)
	UpdateFunc             func(ctx context.Context, id string, in LanguageInput) (Language, error)
	ListExternalFunc       func(ctx context.Context) ([]ExternalLanguage, error)

	// Calls tracks all method invocations for assertions.
	Calls struct {
		List               int
		ChangeStatus       []StatusCall
		CreateFromExternal []LanguageInput
		Update             []LanguageUpdateCall
		ListExternal       int
	}
}

// LanguageUpdateCall records a call to Update.
type LanguageUpdateCall struct {
	ID    string
	Input LanguageInput
}

func (f *FakeLanguageService) List(ctx context.Context) ([]Language, error) {
	f.mu.Lock()
	f.Calls.List++
	f.mu.Unlock()
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeLanguageService) ChangeStatus(ctx context.Context, id string, status Status) error {
	f.mu.Lock()
	f.Calls.ChangeStatus = append(f.Calls.ChangeStatus, StatusCall{id, status})
	f.mu.Unlock()
	if f.ChangeStatusFunc != nil {
		return f.ChangeStatusFunc(ctx, id, status)
	}
	return nil
}

func (f *FakeLanguageService) CreateFromExternal(ctx context.Context, in LanguageInput) (Language, error) {
	f.mu.Lock()
	f.Calls.CreateFromExternal = append(f.Calls.CreateFromExternal, in)
	f.mu.Unlock()
	if f.CreateFromExternalFunc != nil {
		return f.CreateFromExternalFunc(ctx, in)
	}
	return Language{Code: in.Code, Name: in.Name, NativeName: in.NativeName, Region: in.Region, Status: StatusActive}, nil
}

func (f *FakeLanguageService) Update(ctx context.Context, id string, in LanguageInput) (Language, error) {
	f.mu.Lock()
	f.Calls.Update = append(f.Calls.Update, LanguageUpdateCall{id, in})
	f.mu.Unlock()
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, in)
	}
	return Language{ID: id, Code: in.Code, Name: in.Name, NativeName: in.NativeName, Region: in.Region, Status: StatusActive}, nil
}

func (f *FakeLanguageService) ListExternal(ctx context.Context) ([]ExternalLanguage, error) {
	f.mu.Lock()
	f.Calls.ListExternal++
	f.mu.Unlock()
	if f.ListExternalFunc != nil {
		return f.ListExternalFunc(ctx)
	}
	return nil, nil
}

// WithLanguages configures List to return the given languages.
func (f *FakeLanguageService) WithLanguages(languages ...Language) *FakeLanguageService {
	f.ListFunc = func(context.Context) ([]Language, error) {
		return append([]Language(nil), languages...), nil
	}
	return f
}

var (
	_ MovieService    = (*FakeMovieService)(nil)
	_ LanguageService = (*FakeLanguageService)(nil)
)
