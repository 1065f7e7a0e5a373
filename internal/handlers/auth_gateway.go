package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightflow/config"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
	"freightflow/internal/utils"
)

type AuthHTTPHandler struct {
	store *store.Store
	auth  config.AuthConfig
}

func NewAuthHTTPHandler(s *store.Store, auth config.AuthConfig) *AuthHTTPHandler {
	return &AuthHTTPHandler{store: s, auth: auth}
}

type LoginRequest struct {
	OpenID      string  `json:"openId" binding:"required"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	LoginMethod *string `json:"loginMethod,omitempty"`
}

// Login is the external-auth callback target: it upserts the user keyed on
// the provider's open id and sets the session cookie.
func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	err := h.store.UpsertUser(store.UpsertUserInput{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to sign in: "+err.Error()))
		return
	}

	user := h.store.GetUserByOpenID(req.OpenID)
	if user == nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to load user after sign in"))
		return
	}

	token, exp, err := utils.GenerateSessionToken([]byte(h.auth.JWTSecret), user.ID, user.OpenID, user.Role, h.auth.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create session"))
		return
	}

	c.SetCookie(h.auth.CookieName, token, int(h.auth.SessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, successResponse("Signed in", gin.H{
		"user":       user,
		"expires_at": exp,
	}))
}

// Me returns the current user, or null data for anonymous callers.
func (h *AuthHTTPHandler) Me(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.JSON(http.StatusOK, nullResponse("Not signed in"))
		return
	}

	user := h.store.GetUserByID(userID.(int64))
	if user == nil {
		c.JSON(http.StatusOK, nullResponse("Not signed in"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Current user", user))
}

// Logout clears the session cookie with an immediate expiry.
func (h *AuthHTTPHandler) Logout(c *gin.Context) {
	c.SetCookie(h.auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, successResponse("Signed out", nil))
}
