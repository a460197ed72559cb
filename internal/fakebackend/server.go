package fakebackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/rfhold/marquee/internal/catalog"
)

// Base paths of the two resources
const (
	MoviesPrefix    = "/v1/api/RapidAPI/Disney"
	LanguagesPrefix = "/v1/api/netflix/languages"
)

// Route names, usable with FailNext
const (
	RouteMovieList         = "movies.list"
	RouteMovieStatus       = "movies.status"
	RouteMovieSearch       = "movies.search"
	RouteMovieCreate       = "movies.create"
	RouteMovieUpdate       = "movies.update"
	RouteLanguageList      = "languages.list"
	RouteLanguageStatus    = "languages.status"
	RouteLanguageCreate    = "languages.create"
	RouteLanguageUpdate    = "languages.update"
	RouteLanguageExternals = "languages.external"
)

type injectedFailure struct {
	status  int
	message string
}

// Server serves the movie and language routes over a Store
type Server struct {
	store  *Store
	router *mux.Router
	logger hclog.Logger

	mu       sync.Mutex
	failures map[string][]injectedFailure
}

// NewServer creates a server over store. A nil logger discards request logs.
func NewServer(store *Store, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Server{
		store:    store,
		logger:   logger,
		failures: make(map[string][]injectedFailure),
	}
	s.router = s.routes()
	return s
}

// Store returns the backing store
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// FailNext makes the next request to the named route answer with status and
// a {"message"} body. An empty message sends a body without one.
func (s *Server) FailNext(route string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = append(s.failures[route], injectedFailure{status, message})
}

func (s *Server) takeFailure(route string) (injectedFailure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.failures[route]
	if len(queue) == 0 {
		return injectedFailure{}, false
	}
	s.failures[route] = queue[1:]
	return queue[0], true
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.UseEncodedPath()
	r.Use(s.logRequests, s.injectFailures)

	movies := r.PathPrefix(MoviesPrefix).Subrouter()
	movies.HandleFunc("/GetAll", s.listMovies).Methods(http.MethodGet).Name(RouteMovieList)
	movies.HandleFunc("/Mongo/changeStatus/{id}", s.changeMovieStatus).Methods(http.MethodPatch).Name(RouteMovieStatus)
	movies.HandleFunc("/API/searchFull/{name}", s.searchMovies).Methods(http.MethodGet).Name(RouteMovieSearch)
	movies.HandleFunc("/save", s.createMovie).Methods(http.MethodPost).Name(RouteMovieCreate)
	movies.HandleFunc("/Mongo/update", s.updateMovie).Methods(http.MethodPut).Name(RouteMovieUpdate)

	languages := r.PathPrefix(LanguagesPrefix).Subrouter()
	languages.HandleFunc("/db/GetAll", s.listLanguages).Methods(http.MethodGet).Name(RouteLanguageList)
	languages.HandleFunc("/db/changeStatus/{id}", s.changeLanguageStatus).Methods(http.MethodPatch).Name(RouteLanguageStatus)
	languages.HandleFunc("/db/save", s.createLanguage).Methods(http.MethodPost).Name(RouteLanguageCreate)
	languages.HandleFunc("/db/update/{id}", s.updateLanguage).Methods(http.MethodPut).Name(RouteLanguageUpdate)
	languages.HandleFunc("/api", s.listExternalLanguages).Methods(http.MethodGet).Name(RouteLanguageExternals)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"request_id", r.Header.Get("X-Request-Id"),
			"duration", time.Since(start))
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if f, ok := s.takeFailure(route.GetName()); ok {
				s.logger.Debug("injected failure", "route", route.GetName(), "status", f.status)
				writeError(w, f.status, f.message)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	body := map[string]string{}
	if message != "" {
		body["message"] = message
	}
	writeJSON(w, status, body)
}

// storeError maps store errors onto HTTP statuses and Spanish messages
func storeError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, ErrRequired):
		writeError(w, http.StatusBadRequest, "Faltan campos obligatorios")
	case errors.Is(err, ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Estado inválido")
	case errors.Is(err, ErrDuplicate):
		writeError(w, http.StatusConflict, "El idioma ya existe")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// pathVar returns the unescaped value of a path variable
func pathVar(r *http.Request, name string) (string, bool) {
	raw := mux.Vars(r)[name]
	v, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return false
	}
	return true
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Movies())
}

func (s *Server) changeMovieStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathVar(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Falta el id")
		return
	}
	status := catalog.Status(r.URL.Query().Get("status"))
	if err := s.store.SetMovieStatus(id, status); err != nil {
		storeError(w, err, "Película no encontrada")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
}

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	name, ok := pathVar(r, "name")
	if !ok {
		writeError(w, http.StatusBadRequest, "Falta el nombre")
		return
	}
	writeJSON(w, http.StatusOK, s.store.SearchExternalMovies(name))
}

func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	movie, err := s.store.CreateMovie(body.Name, body.Description)
	if err != nil {
		storeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, movie)
}

func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OldName     string `json:"oldName"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	movie, err := s.store.UpdateMovie(body.OldName, body.Name, body.Description)
	if err != nil {
		storeError(w, err, "Película no encontrada")
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Languages())
}

func (s *Server) changeLanguageStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathVar(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Falta el id")
		return
	}
	status := catalog.Status(r.URL.Query().Get("status"))
	if err := s.store.SetLanguageStatus(id, status); err != nil {
		storeError(w, err, "Idioma no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "estado": string(status)})
}

func (s *Server) createLanguage(w http.ResponseWriter, r *http.Request) {
	var in catalog.LanguageInput
	if !decodeBody(w, r, &in) {
		return
	}
	language, err := s.store.CreateLanguage(in)
	if err != nil {
		storeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, language)
}

func (s *Server) updateLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathVar(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Falta el id")
		return
	}
	var in catalog.LanguageInput
	if !decodeBody(w, r, &in) {
		return
	}
	language, err := s.store.UpdateLanguage(id, in)
	if err != nil {
		storeError(w, err, "Idioma no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, language)
}

func (s *Server) listExternalLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ExternalLanguages())
}
