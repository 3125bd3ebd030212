package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/pkg/jwt"
	"github.com/andrewarnaud1/mymanager/pkg/redis"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// JWTAuth verifies the Bearer access token and injects the account identity
// into the request context. Revoked tokens are rejected when Redis is
// available; without Redis revocation degrades to token expiry.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, 40100, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 40100, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 40101, "token expired")
			} else {
				response.Unauthorized(c, 40102, "token invalid")
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 40102, "token invalid")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 40103, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxAccountID, claims.AccountID)
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
		response.Forbidden(c, 40300, "insufficient permissions")
		c.Abort()
	}
}
