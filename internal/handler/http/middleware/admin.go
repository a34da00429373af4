package middleware

import (
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

// AdminOnly must run after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.RequireAdmin(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
