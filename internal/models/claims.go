package models

import "github.com/golang-jwt/jwt"

// Claims is the token payload: the static client pair plus whatever
// identity the caller asked to embed. Tokens carry no expiry of their
// own; the issuance cutoff is enforced only when minting.
type Claims struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	UserID       string `json:"user_id,omitempty"`
	UserRole     string `json:"user_role,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Department   string `json:"department,omitempty"`
	jwt.StandardClaims
}

func (c *Claims) Identity() Identity {
	return Identity{
		UserID:     c.UserID,
		UserRole:   c.UserRole,
		Name:       c.Name,
		Email:      c.Email,
		Department: c.Department,
	}
}
