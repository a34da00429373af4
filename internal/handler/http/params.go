package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// int64Param reads a positive integer URL parameter.
func int64Param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func boolQuery(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}
