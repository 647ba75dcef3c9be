package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
	"github.com/y-inoue-koma/club-activity-manager/pkg/redis"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth rejects requests without a valid Bearer access token. Revoked
// tokens are rejected through the Redis blacklist when Redis is up.
func JWTAuth(jm *jwt.Manager, rc *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, response.CodeTokenMissing, "authorization header missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, response.CodeTokenInvalid, "authorization header malformed")
			c.Abort()
			return
		}

		claims, err := jm.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, response.CodeTokenExpired, "token expired")
			} else {
				response.Unauthorized(c, response.CodeTokenInvalid, "token invalid")
			}
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, response.CodeTokenInvalid, "token invalid")
			c.Abort()
			return
		}

		if rc != nil {
			blacklisted, err := rc.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("blacklist lookup failed", zap.Error(err))
			} else if blacklisted {
				response.Unauthorized(c, response.CodeTokenRevoked, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RoleAuth allows only the listed roles past. Must run after JWTAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, response.CodeForbidden, "insufficient permissions")
		c.Abort()
	}
}
