package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Sidebar menu for the authenticated role
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "items"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/navigation [get]
func (h *Handler) navigation(c *gin.Context) {
	user, ok := currentIdentity(c)
	if !ok {
		// the guard always sets the identity; reaching here is a wiring bug
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	items := h.services.MenuFor(user.Role)
	c.JSON(http.StatusOK, gin.H{"items": items})
}
