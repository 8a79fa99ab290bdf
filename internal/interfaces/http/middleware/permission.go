package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

// Enforcer answers role-based permission checks.
type Enforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// Require rejects the request unless the authenticated user's role is allowed
// to perform action on resource. Must run after RequireAuth.
func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
