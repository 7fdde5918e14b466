package server

import (
	"net/http"
	"strconv"

	"github.com/victorucama-create/nexasuite-erp/erp"
)

// pageParams reads the page/limit query parameters, falling back to the
// first page at the default listing size.
func pageParams(r *http.Request) (page, limit int) {
	page = queryInt(r, "page", 1)
	limit = queryInt(r, "limit", erp.DefaultPageLimit)
	return page, limit
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
