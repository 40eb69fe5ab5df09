package middleware

import (
	"net/http"
	"strings"

	"wildventures/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	userRoleKey    = "userRole"
	userSubjectKey = "userSubject"
)

// TokenParser turns a bearer token into the caller it was issued to.
type TokenParser interface {
	ParseAdmin(token string) (domain.RequestContext, error)
}

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's role for RequireRoles.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: missing bearer token"})
			return
		}

		rc, err := parser.ParseAdmin(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: " + err.Error()})
			return
		}

		c.Set(userRoleKey, rc.Role)
		c.Set(userSubjectKey, rc.Subject)
		c.Next()
	}
}
