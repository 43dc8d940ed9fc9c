package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
)

// TokenConfig is the static material behind the token mint: the HS256
// signing key, the single client pair allowed to mint, and the hard
// cutoff instant after which issuance stops entirely.
type TokenConfig struct {
	SigningKey     string
	ClientID       string
	ClientSecret   string
	IssuanceCutoff time.Time
}

// Manager issues and verifies client-credential tokens. It is
// stateless and safe for concurrent use.
//
// This is not per-user authentication: any caller holding the static
// client pair can mint a token asserting any identity. The identity
// claims are embedded as-declared, never checked against a directory.
type Manager struct {
	signingKey   string
	clientID     string
	clientSecret string
	cutoff       time.Time
}

func NewManager(cfg TokenConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("empty client credentials")
	}
	return &Manager{
		signingKey:   cfg.SigningKey,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		cutoff:       cfg.IssuanceCutoff,
	}, nil
}

// Issue mints a signed token embedding the client pair and the given
// identity. The client pair must match the configured one exactly.
// The token itself never expires; the cutoff gates minting only and is
// not re-checked at verification time.
func (m *Manager) Issue(clientID, clientSecret string, identity models.Identity) (string, error) {
	if !time.Now().Before(m.cutoff) {
		return "", models.ErrIssuanceClosed
	}
	if clientID != m.clientID || clientSecret != m.clientSecret {
		return "", models.ErrInvalidClient
	}

	claims := models.Claims{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		UserID:       identity.UserID,
		UserRole:     identity.UserRole,
		Name:         identity.Name,
		Email:        identity.Email,
		Department:   identity.Department,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

// Verify checks the signature and the embedded client pair
// (case-insensitively) and returns the full claim set.
func (m *Manager) Verify(accessToken string) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	if !strings.EqualFold(claims.ClientID, m.clientID) ||
		!strings.EqualFold(claims.ClientSecret, m.clientSecret) {
		return nil, models.ErrInvalidClient
	}
	return claims, nil
}
