package middlewares

import (
	"context"
	"net/http"
	"strings"

	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"
)

// Authenticate validates the bearer token and stores the token's email claim
// on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authorizationHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		email, err := utils.ParseJWT(parts[1], m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate; the role is resolved from the
// user store by the authenticated email.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return m.requireRole(next, m.UserUsecase.IsAdmin)
}

// RequireProvider must run after Authenticate.
func (m *Middlewares) RequireProvider(next http.Handler) http.Handler {
	return m.requireRole(next, m.UserUsecase.IsProvider)
}

func (m *Middlewares) requireRole(next http.Handler, hasRole func(ctx context.Context, email string) (bool, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
		if email == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		allowed, err := hasRole(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !allowed {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
