package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// UserFromContext returns the authenticated user placed there by withAuth,
// or nil on unauthenticated requests.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// withAuth rejects requests without a valid bearer token and stores the
// resolved identity in the request context.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			writeUnauthorized(w)
			return
		}

		user, err := s.users.CurrentIdentity(r.Context(), token)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		next(w, r.WithContext(withUser(r.Context(), user)))
	}
}
