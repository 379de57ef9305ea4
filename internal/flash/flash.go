// Package flash carries one-shot notices across POST-redirect-GET, the
// server-rendered equivalent of a toast. A notice is written to a cookie on
// redirect and consumed (read and cleared) by the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const cookieName = "mc_flash"

// secureCookie mirrors the session cookie's Secure attribute so both cookies
// behave the same behind TLS.
var secureCookie bool

// Configure sets the Secure attribute used on notice cookies. Call once
// during application startup.
func Configure(secure bool) {
	secureCookie = secure
}

// Kind classifies a notice for styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one message shown exactly once.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success queues a success notice for the next page render.
func Success(c *gin.Context, message string) {
	set(c, Notice{Kind: KindSuccess, Message: message})
}

// Error queues an error notice for the next page render.
func Error(c *gin.Context, message string) {
	set(c, Notice{Kind: KindError, Message: message})
}

func set(c *gin.Context, n Notice) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(raw), 60, "/", "", secureCookie, true)
}

// Take consumes the pending notice, clearing the cookie. Returns nil when
// there is nothing to show.
func Take(c *gin.Context) *Notice {
	val, err := c.Cookie(cookieName)
	if err != nil || val == "" {
		return nil
	}

	// Clear regardless of whether the value decodes; a notice shows once.
	c.SetCookie(cookieName, "", -1, "/", "", secureCookie, true)

	raw, err := base64.URLEncoding.DecodeString(val)
	if err != nil {
		return nil
	}

	var n Notice
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return &n
}
