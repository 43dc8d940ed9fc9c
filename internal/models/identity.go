package models

import "context"

// Identity is the caller snapshot extracted from a verified token.
// It lives only for the duration of a request.
type Identity struct {
	UserID     string `json:"user_id"`
	UserRole   string `json:"user_role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Complete reports whether all required identity claims are present.
// Department is optional.
func (id Identity) Complete() bool {
	return id.UserID != "" && id.UserRole != "" && id.Name != "" && id.Email != ""
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
