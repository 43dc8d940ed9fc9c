package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
	"github.com/abdullah-abacus/UDST-Lost-Found/utils"
)

func testApp(t *testing.T) *application {
	t.Helper()
	tokens, err := utils.NewManager(utils.TokenConfig{
		SigningKey:     "test-signing-key",
		ClientID:       "client",
		ClientSecret:   "secret",
		IssuanceCutoff: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	discard := log.New(io.Discard, "", 0)
	return &application{
		tokens:   tokens,
		infoLog:  discard,
		errorLog: discard,
	}
}

func TestRequireTokenRejections(t *testing.T) {
	app := testApp(t)
	guarded := app.requireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lost-found/all", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", tc.name, w.Code)
		}
	}
}

func TestRequireTokenClientMismatch(t *testing.T) {
	app := testApp(t)

	// Same signing key, different client pair: signature verifies but
	// the embedded pair does not match.
	other, err := utils.NewManager(utils.TokenConfig{
		SigningKey:     "test-signing-key",
		ClientID:       "evil",
		ClientSecret:   "evil",
		IssuanceCutoff: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := other.Issue("evil", "evil", models.Identity{
		UserID: "u1", UserRole: "student", Name: "A", Email: "a@x.com",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	guarded := app.requireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))
	r := httptest.NewRequest(http.MethodGet, "/api/v1/lost-found/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireTokenIncompleteIdentity(t *testing.T) {
	app := testApp(t)

	token, err := app.tokens.Issue("client", "secret", models.Identity{UserID: "u1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	guarded := app.requireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))
	r := httptest.NewRequest(http.MethodGet, "/api/v1/lost-found/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireTokenAttachesIdentity(t *testing.T) {
	app := testApp(t)

	want := models.Identity{
		UserID:     "u1",
		UserRole:   models.RoleStudent,
		Name:       "A",
		Email:      "a@x.com",
		Department: "CS",
	}
	token, err := app.tokens.Issue("client", "secret", want)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got models.Identity
	guarded := app.requireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := models.IdentityFrom(r.Context())
		if !ok {
			t.Error("identity missing from context")
		}
		got = id
	}))
	r := httptest.NewRequest(http.MethodGet, "/api/v1/lost-found/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got != want {
		t.Errorf("identity mismatch: got %+v, want %+v", got, want)
	}
}
