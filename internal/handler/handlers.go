// Package handler contains the page and action handlers for every screen.
// Handlers fetch into the session's view state through the upstream client
// and render from it; they never talk HTTP to the API directly.
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/microcourses/microcourses-web/internal/flash"
	"github.com/microcourses/microcourses-web/internal/upstream"
)

// flashUpstreamError queues the server-supplied detail when the failure
// carries one, else the fallback message for code. Transport failures never
// leak raw error strings to the page.
func flashUpstreamError(c *gin.Context, err error, code flash.Code) {
	fallback := flash.Message(code)

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		flash.Error(c, apiErr.Message(fallback))
		return
	}
	flash.Error(c, fallback)
}

// queryInt parses an integer query param, returning 0 when absent or bad.
func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

// paramInt parses an integer path param, returning 0 when bad.
func paramInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0
	}
	return n
}

// validTab returns tab when it is one of allowed, else the first allowed
// entry. Tab sets are fixed per role; nothing else gates a tab switch.
func validTab(tab string, allowed []string) string {
	for _, a := range allowed {
		if tab == a {
			return tab
		}
	}
	return allowed[0]
}
