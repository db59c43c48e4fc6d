package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/auth"
)

// usernameFromRequest pulls the authenticated username out of the verified
// JWT claims.
func usernameFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", auth.ErrInvalidToken
	}
	return username, nil
}
