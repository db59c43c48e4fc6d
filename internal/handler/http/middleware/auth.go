package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/auth"
	"github.com/indra-asistencia/asistencia-backend-go/internal/handler/http/response"
)

// isAccessToken rejects refresh tokens presented on protected routes.
func isAccessToken(r *http.Request, token jwt.Token) bool {
	claims, err := token.AsMap(r.Context())
	if err != nil {
		return false
	}
	tokenType, ok := claims["type"].(string)
	return ok && tokenType == "access"
}

// AuthRequired admits only requests carrying a verified access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil || !isAccessToken(r, token) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
