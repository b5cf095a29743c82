package api

import (
	"errors"
	"net/http"

	resdto "glass-dispatch/internal/handler/dto/response"
	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/handler/middleware"
	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/pkg/cookie"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	userQuery queries.UserQueries
	cfg       config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, userQuery queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		userQuery: userQuery,
		cfg:       cfg,
	}
}

// @Summary Exchange session
// @Description Exchange a short-lived session id from the identity provider for a session token
// @Tags auth
// @Produce json
// @Param X-Session-ID header string true "Session id from the sign-in flow"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/session [post]
func (h *AuthHandler) ExchangeSession(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing session id header"), "X-Session-ID header required", nil)
		return
	}

	result, err := h.cmds.ExchangeSession(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionExchangeFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Session exchange failed", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, commands.SessionTTL)

	c.JSON(http.StatusOK, resdto.SessionResponse{
		SessionToken: result.Token,
		ExpiresAt:    result.ExpiresAt.Unix(),
		User:         result.User,
	})
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.userQuery.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Logout
// @Description Delete the current session and clear the cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token != "" {
		if err := h.cmds.Logout(c.Request.Context(), token); err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
	}

	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
