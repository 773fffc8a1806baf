package api

import (
	"net/http"
	"strconv"
)

const defaultPageSize = 10

// pageParams reads page/limit query parameters, falling back to page 1 and a
// ten-row page for anything absent or unparsable.
func pageParams(r *http.Request) (page, limit, offset int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}

	return page, limit, (page - 1) * limit
}

// totalPages rounds the row count up to whole pages
func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
