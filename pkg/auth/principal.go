package auth

import (
	"context"
	"errors"
)

// ErrUnknownPrincipal is what a PrincipalLoader returns when the token's user
// no longer exists.
var ErrUnknownPrincipal = errors.New("token owner not found")

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID  string
	Name    string
	Email   string
	IsAdmin bool
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
