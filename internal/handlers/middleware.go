package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ctxUserID = "userId"
	ctxToken  = "token"
)

// authMiddleware resolves the bearer token to a user. A missing or empty
// token is a 400; a well-formed token with no live session is a 401.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}
	token := parts[1]

	userID, err := h.services.Authenticate(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid token",
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_lookup_failed", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal error",
		})
		return
	}

	c.Set(ctxUserID, userID)
	c.Set(ctxToken, token)
	c.Next()
}
