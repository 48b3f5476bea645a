package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/correagss/personal-control-finance/internal/models"
	"github.com/correagss/personal-control-finance/internal/service"
	"github.com/gorilla/mux"
)

// Context key type to avoid collisions.
type contextKey string

// userContextKey is the context key for the authenticated user.
const userContextKey contextKey = "user"

// CurrentUser retrieves the authenticated user from the request context.
// It returns nil outside of routes guarded by Auth.
func CurrentUser(r *http.Request) *models.Usuario {
	if user, ok := r.Context().Value(userContextKey).(*models.Usuario); ok {
		return user
	}
	return nil
}

// Auth resolves the bearer token once per request and stores the user in
// the request context. Requests without a valid token get a 401.
func Auth(svc *service.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w)
				return
			}

			user, err := svc.ResolveUser(parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"` + service.ErrCouldNotValidate.Error() + `"}`))
}
