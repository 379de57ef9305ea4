package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode errors.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
)

// Role is the closed set of platform roles carried in the token.
type Role string

const (
	RoleStudent Role = "student"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw role claim onto the closed enum. Unknown or empty
// values degrade to RoleStudent, the lowest privilege level, instead of
// failing the session.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleStudent, RoleCreator, RoleAdmin:
		return Role(raw)
	default:
		return RoleStudent
	}
}

// DashboardPath returns the dashboard route for a role. Total: every role
// value maps somewhere.
func (r Role) DashboardPath() string {
	switch r {
	case RoleCreator:
		return "/dashboard/creator"
	case RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/dashboard/student"
	}
}

// Session is the client-held identity derived from the persisted token. It is
// never stored separately: every gated request decodes it fresh from the
// token.
type Session struct {
	RawToken string
	Subject  string // email
	Role     Role
}

// Name is the display name: the part of the subject before '@'.
func (s *Session) Name() string {
	if s.Subject == "" {
		return "User"
	}
	return strings.SplitN(s.Subject, "@", 2)[0]
}

// tokenClaims is the expected token payload. Only sub, role and exp are
// meaningful to this side.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Decode extracts the Session from a bearer token without verifying the
// signature. Verification is the API's job; the frontend only branches UI on
// the payload. A malformed payload or a past exp claim is an error; the
// caller treats both as "no session".
func Decode(token string) (*Session, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, ErrTokenMalformed
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return &Session{
		RawToken: token,
		Subject:  claims.Subject,
		Role:     ParseRole(claims.Role),
	}, nil
}
