package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where AuthMiddleware stores the resolved caller id.
const ContextUserIDKey = "caller_id"

// Authenticator resolves the caller identity from a request. Handlers only
// ever see the resolved id, so swapping header trust for real session or
// token validation is a constructor change, not a handler change.
type Authenticator interface {
	ResolveCallerID(r *http.Request) (uint, error)
}

// HeaderAuthenticator takes the numeric X-User-Id header as the authenticated
// identity. There is no signature or session behind it: trust-on-read,
// preserved from the system this backend replaces. Only deploy it behind a
// gateway that authenticates for real.
type HeaderAuthenticator struct{}

func (HeaderAuthenticator) ResolveCallerID(r *http.Request) (uint, error) {
	raw := r.Header.Get(util.HeaderUserID)
	if raw == "" {
		return 0, errors.New("missing " + util.HeaderUserID + " header")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + util.HeaderUserID + " header")
	}

	return uint(id), nil
}

// TokenAuthenticator validates a Bearer JWT instead of trusting a header.
// Selected with auth.mode "token".
type TokenAuthenticator struct {
	Secret string
}

func (a TokenAuthenticator) ResolveCallerID(r *http.Request) (uint, error) {
	header := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" {
		return 0, errors.New("missing bearer token")
	}

	claims, err := util.ParseJWT(tokenString, a.Secret)
	if err != nil {
		return 0, errors.New("invalid token")
	}

	return claims.UserID, nil
}

// NewAuthenticator picks the authenticator for the configured auth mode.
func NewAuthenticator(cfg *config.Config) Authenticator {
	if cfg.Auth.Mode == "token" {
		return TokenAuthenticator{Secret: cfg.Auth.JWTSecret}
	}
	return HeaderAuthenticator{}
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.ResolveCallerID(c.Request)
		if err != nil {
			util.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, id)
		c.Next()
	}
}

// CallerID returns the authenticated user id, or 0 outside AuthMiddleware.
func CallerID(c *gin.Context) uint {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}

// RequireAdmin gates admin-only actions with a role lookup by caller id. The
// lookup is a plain read before the action, not transactional with it.
//
// AdminFallbackUserID reproduces a legacy rule: that id passes when no usable
// role value exists for it. An explicit non-admin role still loses.
func RequireAdmin(users *repository.UserRepository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CallerID(c)
		if id == 0 {
			util.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		user, err := users.FindByID(id)
		if err == nil && user.Role == model.RoleAdmin {
			c.Next()
			return
		}

		fallback := cfg.Auth.AdminFallbackUserID
		if fallback != 0 && id == fallback && (err != nil || user.Role == "") {
			c.Next()
			return
		}

		util.Forbidden(c)
		c.Abort()
	}
}
