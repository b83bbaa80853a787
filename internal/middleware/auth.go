package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/constants"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/repository"
	"gorm.io/gorm"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uint64
	UserName string
	IsAdmin  bool
}

// SessionPrincipal reads the principal stored in the session, if any.
func SessionPrincipal(session sessions.Session) (*Principal, bool) {
	userID, ok := toUint64(session.Get(constants.SessionKeyUserID))
	if !ok {
		return nil, false
	}

	p := &Principal{UserID: userID}
	if name, ok := session.Get(constants.SessionKeyUserName).(string); ok {
		p.UserName = name
	}
	if isAdmin, ok := session.Get(constants.SessionKeyIsAdmin).(bool); ok {
		p.IsAdmin = isAdmin
	}
	return p, true
}

// LoadPrincipal resolves the session into a request-scoped principal. It never
// rejects a request; the Require* gates do.
func LoadPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := SessionPrincipal(sessions.Default(c)); ok {
			c.Set(constants.ContextKeyPrincipal, p)
		}
		c.Next()
	}
}

// RequireLogin redirects requests without a session to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			c.Redirect(http.StatusFound, constants.LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin checks the stored account, not the session flag, so a revoked
// admin loses access immediately. Must run after RequireLogin.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, constants.LoginPath)
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), p.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Forbidden(c, "", "")
				return
			}
			apierrors.InternalError(c, "")
			return
		}

		if !user.IsAdmin {
			apierrors.Forbidden(c, "", "Administrator rights required")
			return
		}

		p.IsAdmin = true
		c.Next()
	}
}

// GetPrincipal returns the principal of the current request.
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok && p != nil
}

// SetPrincipal stores p as the request principal.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
}

func toUint64(v interface{}) (uint64, bool) {
	switch v := v.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
