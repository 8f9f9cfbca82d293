// Package jwtauth resolves HS256 bearer tokens to principals. The token
// subject is the username; the account itself lives in the users table.
package jwtauth

import (
	"context"
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// UserFinder loads the account named by a token subject.
// ports.UserRepository satisfies it.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (principal.Principal, error)
}

// Resolver implements ports.PrincipalResolver over HS256 bearer tokens.
// The subject claim carries the username.
type Resolver struct {
	secret []byte
	users  UserFinder
	parser *jwt.Parser
}

// NewResolver creates a resolver that accepts only HS256 tokens with an
// expiry claim.
//
// Parameters:
//   - secret: shared signing key, required
//   - users: account lookup, required
//
// Returns:
//   - *Resolver: ready for use
//   - error: ValueIsRequiredError when secret or users is missing
func NewResolver(secret string, users UserFinder) (*Resolver, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}

	return &Resolver{
		secret: []byte(secret),
		users:  users,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Resolve verifies credential and loads its subject. Disabled accounts are
// returned as is.
func (r *Resolver) Resolve(ctx context.Context, credential string) (principal.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := r.parser.ParseWithClaims(credential, claims, r.key); err != nil {
		return principal.Principal{}, errs.NewUnauthenticatedError("invalid token", err)
	}
	if claims.Subject == "" {
		return principal.Principal{}, errs.NewUnauthenticatedError("token has no subject", nil)
	}

	p, err := r.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return principal.Principal{}, errs.NewUnauthenticatedError("unknown user", err)
		}
		return principal.Principal{}, fmt.Errorf("failed to load user %q: %w", claims.Subject, err)
	}

	return p, nil
}

func (r *Resolver) key(_ *jwt.Token) (any, error) {
	return r.secret, nil
}
