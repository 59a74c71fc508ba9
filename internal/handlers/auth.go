package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"duttmandir/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusLoggedOut = "logged_out"

	errLoginFailed    = "failed to log in"
	errRegisterFailed = "failed to register"
	errLogoutFailed   = "failed to log out"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AcceptTerms     bool   `json:"accept_terms"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Log in with directory credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_rejected", "email", input.Email)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginFailed, "auth_login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.Name),
		"user":    user,
	})
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Name:          input.Name,
		Email:         input.Email,
		Secret:        input.Password,
		ConfirmSecret: input.ConfirmPassword,
		AcceptTerms:   input.AcceptTerms,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
		case errors.Is(err, service.ErrEmailAlreadyExists):
			if h.log != nil {
				h.log.Infow("auth_register_conflict", "email", input.Email)
			}
			c.JSON(http.StatusConflict, gin.H{"error": service.ErrEmailAlreadyExists.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errRegisterFailed, "auth_register_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful!",
		"user":    user,
	})
}

// @Summary      Log out and clear the persisted session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.Logout(c.Request.Context()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLogoutFailed, "auth_logout_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  statusLoggedOut,
		"message": "You have been logged out",
	})
}

// @Summary      Current session presence and identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "authenticated, user"
// @Router       /auth/session [get]
func (h *Handler) session(c *gin.Context) {
	user, ok := h.services.Current(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}
