package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/service"
)

const authEmailKey = "auth_email"

// Authenticate rejects requests without a valid bearer token and stores
// the verified email in the request context.
func Authenticate(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			abortUnauthorized(c, "Missing authorization token")
			return
		}

		email, ok := users.VerifyToken(token)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(authEmailKey, email)
		c.Next()
	}
}

// AuthEmail returns the email set by Authenticate, or "".
func AuthEmail(c *gin.Context) string {
	if value, ok := c.Get(authEmailKey); ok {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
		Status:     "error",
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	})
}

// CORSMiddleware allows browser clients from the configured origins. An
// entry of "*" allows any origin. Preflight requests are answered here
// and never reach the handlers.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			allowAll = true
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := originMap[origin]
			if allowAll || ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
