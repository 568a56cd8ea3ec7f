package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/globalfund/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

// PrincipalLoader resolves the user behind a verified token. It returns
// ErrUnknownPrincipal when the user no longer exists.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, userID string) (*Principal, error)
}

type Authenticator struct {
	jwtService JWTServiceInterface
	loader     PrincipalLoader
}

func NewAuthenticator(jwtService JWTServiceInterface, loader PrincipalLoader) *Authenticator {
	return &Authenticator{jwtService: jwtService, loader: loader}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		principal, err := a.loader.LoadPrincipal(r.Context(), claims.UserID)
		if errors.Is(err, ErrUnknownPrincipal) {
			zap.L().Info("token owner not found", zap.String("user_id", claims.UserID))
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		if err != nil {
			zap.L().Error("can't load token owner", zap.String("user_id", claims.UserID), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// RequireAdmin must run after Authenticator.Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		if !principal.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Not authorized as an admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
