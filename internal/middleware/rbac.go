package middleware

import (
	"net/http"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/gin-gonic/gin"
)

// RequireRole checks that the authenticated user's role is in the
// allowed set. A user with the wrong role is pointed at their own role's
// home route rather than shown an error page.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFailRedirect(c, http.StatusUnauthorized, response.ErrTokenRequired, AuthEntryRoute)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFailRedirect(c, http.StatusForbidden, response.ErrWrongRole, claims.Role.HomeRoute())
	}
}
