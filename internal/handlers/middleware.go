package handlers

import (
	"net/http"

	"duttmandir/internal/models"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key holding the authenticated identity.
const identityKey = "identity"

// sessionGuard re-evaluates session presence on every request: absent means
// the unauthenticated tree (401), present attaches the identity and proceeds.
func (h *Handler) sessionGuard(c *gin.Context) {
	user, ok := h.services.Current(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}

	c.Set(identityKey, user)
	c.Next()
}

// currentIdentity reads the identity the guard stored on the context.
func currentIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	user, ok := v.(models.Identity)
	return user, ok
}
