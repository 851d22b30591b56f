package middleware

import (
	"net/http"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/response"
	"github.com/edutech/exam-backend/internal/service"
	"github.com/edutech/exam-backend/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the name of the session ID cookie.
	SessionCookie = "exam_session"

	// ContextKeySession is the Gin context key for the resolved session.
	ContextKeySession = "session"
)

// RequireSession resolves the session cookie to an identity before any
// repository is touched. Requests without a valid, unexpired session are
// rejected as unauthenticated. Resolving the session also slides its
// inactivity window forward.
func RequireSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		data, err := authService.GetSession(c.Request.Context(), sid)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		c.Set(ContextKeySession, data)
		c.Next()
	}
}

// RequireAdmin restricts a route to ADMIN sessions. Must run after
// RequireSession. The role switch is exhaustive: anything that is not a
// known role is denied.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := GetSession(c)
		if data == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		switch data.Role {
		case model.RoleAdmin:
			c.Next()
		case model.RoleStudent:
			response.AbortFail(c, http.StatusForbidden, response.ErrAdminAccessOnly)
		default:
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
		}
	}
}

// GetSession retrieves the resolved session from the Gin context.
func GetSession(c *gin.Context) *session.Data {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	data, ok := val.(*session.Data)
	if !ok {
		return nil
	}
	return data
}
