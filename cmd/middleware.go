package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s [%s]", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI(), w.Header().Get("X-Request-Id"))
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireToken guards protected routes: it verifies the bearer token,
// demands a complete identity claim set, and attaches the caller
// identity to the request context for handlers downstream.
func (app *application) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.errorJSON(w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			app.errorJSON(w, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		claims, err := app.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, models.ErrInvalidClient) {
				app.errorJSON(w, http.StatusUnauthorized, "Token mismatch. Unauthorized access.")
			} else {
				app.errorJSON(w, http.StatusUnauthorized, "Invalid or malformed token")
			}
			return
		}

		identity := claims.Identity()
		if !identity.Complete() {
			app.errorJSON(w, http.StatusUnauthorized, "Token is missing required identity claims")
			return
		}

		next.ServeHTTP(w, r.WithContext(models.WithIdentity(r.Context(), identity)))
	})
}
