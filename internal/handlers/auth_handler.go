package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
	"github.com/abdullah-abacus/UDST-Lost-Found/utils"
)

type AuthHandler struct {
	Tokens *utils.Manager
}

type generateTokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	UserID       string `json:"user_id"`
	UserRole     string `json:"user_role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

type tokenResponse struct {
	Success        bool           `json:"success"`
	Token          string         `json:"token"`
	DecodedPayload *models.Claims `json:"decoded_payload"`
}

// GenerateTestToken mints a token for the identity given in the JSON
// body, falling back to query parameters for fields the body omits.
// Unsafe for production: it exists so callers can obtain tokens without
// a separate identity provider, and it echoes the decoded payload
// (client secret included) back to the caller.
func (h *AuthHandler) GenerateTestToken(w http.ResponseWriter, r *http.Request) {
	var req generateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	q := r.URL.Query()
	fillFromQuery(&req.ClientID, q, "client_id")
	fillFromQuery(&req.ClientSecret, q, "client_secret")
	fillFromQuery(&req.UserID, q, "user_id")
	fillFromQuery(&req.UserRole, q, "user_role")
	fillFromQuery(&req.Name, q, "name")
	fillFromQuery(&req.Email, q, "email")
	fillFromQuery(&req.Department, q, "department")

	identity := models.Identity{
		UserID:     req.UserID,
		UserRole:   req.UserRole,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}

	token, err := h.Tokens.Issue(req.ClientID, req.ClientSecret, identity)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidClient):
			writeError(w, http.StatusUnauthorized, "Invalid client credentials")
		case errors.Is(err, models.ErrIssuanceClosed):
			writeError(w, http.StatusUnauthorized, "Token issuance window has closed. Please contact the API provider.")
		default:
			log.Printf("GenerateTestToken error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate token: "+err.Error())
		}
		return
	}

	claims, err := h.Tokens.Verify(token)
	if err != nil {
		log.Printf("GenerateTestToken verify error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to decode generated token: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Success:        true,
		Token:          token,
		DecodedPayload: claims,
	})
}

func fillFromQuery(dst *string, q map[string][]string, key string) {
	if *dst != "" {
		return
	}
	if vs := q[key]; len(vs) > 0 {
		*dst = vs[0]
	}
}
