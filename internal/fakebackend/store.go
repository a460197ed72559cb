// Package fakebackend is an in-memory stand-in for the movie and language
// REST backend. It serves the same routes and payloads so the TUI can be
// developed and tested without the real service.
package fakebackend

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rfhold/marquee/internal/catalog"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrRequired      = errors.New("required field missing")
	ErrInvalidStatus = errors.New("invalid status")
	ErrDuplicate     = errors.New("record already exists")
)

// Store holds the movie and language collections plus the read-only external catalogs.
// All methods are safe for concurrent use and return copies.
type Store struct {
	mu sync.RWMutex

	movies    []catalog.Movie
	languages []catalog.Language

	externalMovies    []catalog.ExternalMovie
	externalLanguages []catalog.ExternalLanguage
}

// NewStore creates a store with empty collections and the default external catalogs
func NewStore() *Store {
	return &Store{
		externalMovies:    defaultExternalMovies(),
		externalLanguages: defaultExternalLanguages(),
	}
}

func validStatus(s catalog.Status) bool {
	return s == catalog.StatusActive || s == catalog.StatusInactive
}

// Movies returns the movie collection in insertion order
func (s *Store) Movies() []catalog.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Movie{}, s.movies...)
}

// CreateMovie stores a new active movie with a fresh ObjectID
func (s *Store) CreateMovie(name, description string) (catalog.Movie, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return catalog.Movie{}, ErrRequired
	}
	m := catalog.Movie{
		ID:          primitive.NewObjectID().Hex(),
		Name:        name,
		Description: description,
		Status:      catalog.StatusActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = append(s.movies, m)
	return m, nil
}

// UpdateMovie rewrites the first movie named oldName
func (s *Store) UpdateMovie(oldName, name, description string) (catalog.Movie, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return catalog.Movie{}, ErrRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].Name == oldName {
			s.movies[i].Name = name
			s.movies[i].Description = description
			return s.movies[i], nil
		}
	}
	return catalog.Movie{}, ErrNotFound
}

// SetMovieStatus sets the status of the movie with the given id
func (s *Store) SetMovieStatus(id string, status catalog.Status) error {
	if !validStatus(status) {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ID == id {
			s.movies[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// SearchExternalMovies matches names by case-insensitive substring
func (s *Store) SearchExternalMovies(query string) []catalog.ExternalMovie {
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	results := []catalog.ExternalMovie{}
	for _, m := range s.externalMovies {
		if strings.Contains(strings.ToLower(m.NameText()), needle) {
			results = append(results, m)
		}
	}
	return results
}

// Languages returns the language collection in insertion order
func (s *Store) Languages() []catalog.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Language{}, s.languages...)
}

// CreateLanguage stores a new active language. Codes are unique.
func (s *Store) CreateLanguage(in catalog.LanguageInput) (catalog.Language, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return catalog.Language{}, ErrRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.languages {
		if strings.EqualFold(l.Code, in.Code) {
			return catalog.Language{}, ErrDuplicate
		}
	}
	l := catalog.Language{
		ID:         uuid.NewString(),
		Code:       in.Code,
		Name:       in.Name,
		NativeName: in.NativeName,
		Region:     in.Region,
		Status:     catalog.StatusActive,
	}
	s.languages = append(s.languages, l)
	return l, nil
}

// UpdateLanguage replaces the four editable fields of the language with the given id
func (s *Store) UpdateLanguage(id string, in catalog.LanguageInput) (catalog.Language, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return catalog.Language{}, ErrRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.languages {
		if s.languages[i].ID != id {
			continue
		}
		s.languages[i].Code = in.Code
		s.languages[i].Name = in.Name
		s.languages[i].NativeName = in.NativeName
		s.languages[i].Region = in.Region
		return s.languages[i], nil
	}
	return catalog.Language{}, ErrNotFound
}

// SetLanguageStatus sets the status of the language with the given id
func (s *Store) SetLanguageStatus(id string, status catalog.Status) error {
	if !validStatus(status) {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.languages {
		if s.languages[i].ID == id {
			s.languages[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// ExternalLanguages returns the external language catalog
func (s *Store) ExternalLanguages() []catalog.ExternalLanguage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.ExternalLanguage{}, s.externalLanguages...)
}
