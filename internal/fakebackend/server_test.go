package fakebackend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rfhold/marquee/internal/catalog"
)

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestServer_CreateMovieDefaultsActive(t *testing.T) {
	srv := NewServer(NewStore(), nil)

	rec := do(t, srv, http.MethodPost, MoviesPrefix+"/save", `{"name":"Encanto","description":"A family with magic"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[catalog.Movie](t, rec)
	if created.ID == "" {
		t.Error("expected server-assigned id")
	}
	if created.Status != catalog.StatusActive {
		t.Errorf("expected status A, got %q", created.Status)
	}

	list := decode[[]catalog.Movie](t, do(t, srv, http.MethodGet, MoviesPrefix+"/GetAll", ""))
	if len(list) != 1 || list[0] != created {
		t.Errorf("expected list to contain created movie, got %+v", list)
	}
}

func TestServer_MovieIDsAreObjectIDs(t *testing.T) {
	store := NewStore()
	m, err := store.CreateMovie("Coco", "Music")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.ID) != 24 {
		t.Errorf("expected 24 hex chars, got %q", m.ID)
	}
}

func TestServer_UpdateMovieByOldName(t *testing.T) {
	srv := NewServer(NewStore(), nil)
	original, _ := srv.Store().CreateMovie("Frozen", "Ice")

	rec := do(t, srv, http.MethodPut, MoviesPrefix+"/Mongo/update", `{"oldName":"Frozen","name":"Frozen II","description":"More ice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	updated := decode[catalog.Movie](t, rec)
	if updated.ID != original.ID || updated.Name != "Frozen II" || updated.Description != "More ice" {
		t.Errorf("unexpected update result %+v", updated)
	}

	rec = do(t, srv, http.MethodPut, MoviesPrefix+"/Mongo/update", `{"oldName":"Frozen","name":"X","description":"Y"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for stale old name, got %d", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["message"] != "Película no encontrada" {
		t.Errorf("unexpected message %q", body["message"])
	}
}

func TestServer_ChangeStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   int
	}{
		{"inactive", "I", http.StatusOK},
		{"active", "A", http.StatusOK},
		{"invalid", "X", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(NewStore(), nil)
			m, _ := srv.Store().CreateMovie("Moana", "Ocean")

			rec := do(t, srv, http.MethodPatch, MoviesPrefix+"/Mongo/changeStatus/"+m.ID+"?status="+tt.status, "")
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
			if tt.want == http.StatusOK && srv.Store().Movies()[0].Status != catalog.Status(tt.status) {
				t.Errorf("status not applied")
			}
		})
	}
}

func TestServer_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	srv := NewServer(NewStore(), nil)

	results := decode[[]catalog.ExternalMovie](t, do(t, srv, http.MethodGet, MoviesPrefix+"/API/searchFull/froz", ""))
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !strings.Contains(r.NameText(), "Frozen") {
			t.Errorf("unexpected result %q", r.NameText())
		}
	}

	results = decode[[]catalog.ExternalMovie](t, do(t, srv, http.MethodGet, MoviesPrefix+"/API/searchFull/zzz", ""))
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestServer_SearchUnescapesName(t *testing.T) {
	srv := NewServer(NewStore(), nil)

	results := decode[[]catalog.ExternalMovie](t, do(t, srv, http.MethodGet, MoviesPrefix+"/API/searchFull/frozen%20ii", ""))
	if len(results) != 1 || results[0].NameText() != "Frozen II" {
		t.Errorf("expected Frozen II, got %+v", results)
	}
}

func TestServer_LanguageLifecycle(t *testing.T) {
	srv := NewServer(NewStore(), nil)

	rec := do(t, srv, http.MethodPost, LanguagesPrefix+"/db/save", `{"code":"es","name":"Spanish"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	created := decode[catalog.Language](t, rec)
	if created.Status != catalog.StatusActive {
		t.Errorf("expected estado A, got %q", created.Status)
	}

	rec = do(t, srv, http.MethodPut, LanguagesPrefix+"/db/update/"+created.ID, `{"code":"es","name":"Spanish","nativeName":"Español","region":"ES"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	updated := decode[catalog.Language](t, rec)
	if updated.NativeName != "Español" || updated.Region != "ES" {
		t.Errorf("unexpected update %+v", updated)
	}

	rec = do(t, srv, http.MethodPost, LanguagesPrefix+"/db/save", `{"code":"ES","name":"Dup"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate code, got %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPost, LanguagesPrefix+"/db/save", `{"code":"","name":"Nothing"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing code, got %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPatch, LanguagesPrefix+"/db/changeStatus/"+created.ID+"?status=I", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if srv.Store().Languages()[0].Status != catalog.StatusInactive {
		t.Error("expected language to be inactive")
	}
}

func TestServer_ExternalLanguages(t *testing.T) {
	srv := NewServer(NewStore(), nil)

	list := decode[[]catalog.ExternalLanguage](t, do(t, srv, http.MethodGet, LanguagesPrefix+"/api", ""))
	if len(list) == 0 {
		t.Fatal("expected seeded catalog")
	}
	if len(srv.Store().Languages()) != 0 {
		t.Error("listing the external catalog must not touch the local store")
	}
}

func TestServer_FailNext(t *testing.T) {
	srv := NewServer(NewStore(), nil)
	srv.FailNext(RouteMovieList, http.StatusInternalServerError, "boom")

	rec := do(t, srv, http.MethodGet, MoviesPrefix+"/GetAll", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected injected 500, got %d", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["message"] != "boom" {
		t.Errorf("expected injected message, got %q", body["message"])
	}

	rec = do(t, srv, http.MethodGet, MoviesPrefix+"/GetAll", "")
	if rec.Code != http.StatusOK {
		t.Errorf("failure should only apply once, got %d", rec.Code)
	}
}

func TestStore_SeedDemo(t *testing.T) {
	store := NewStore()
	store.SeedDemo()

	if len(store.Movies()) == 0 || len(store.Languages()) == 0 {
		t.Error("expected demo records")
	}
}
