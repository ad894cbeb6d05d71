package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/auth"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

const ownerIDKey = "ownerID"

// AuthMiddleware validates the bearer token and stores the owner id in the
// request context for downstream handlers.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ownerIDKey, claims.OwnerID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// GetOwnerIDFromGinContext returns the authenticated owner id set by
// AuthMiddleware.
func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(ownerIDKey)
	if !ok {
		return uuid.Nil, apperror.NewUnauthorized("authentication required", nil)
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperror.NewUnauthorized("authentication required", nil)
	}
	return id, nil
}

// ErrorMiddleware converts errors attached to the context into the JSON
// error envelope. Validation errors carry their field details.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("an unexpected error occurred", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
		}

		c.JSON(status, appErr.ToJSON())
	}
}
