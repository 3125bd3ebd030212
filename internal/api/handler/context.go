package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/api/middleware"
)

// MustGetAccountID returns the authenticated account ID.
// Routes using it sit behind JWTAuth, so the key is always present.
func MustGetAccountID(c *gin.Context) string {
	return c.GetString(middleware.CtxAccountID)
}
