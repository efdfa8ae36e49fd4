package handler

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paperstack/backend/internal/model"
	"github.com/paperstack/backend/internal/service"
)

const stateCookieName = "paperstack_sso_state"

type SSOHandler struct {
	sso *service.SSOService
}

func NewSSOHandler(sso *service.SSOService) *SSOHandler {
	return &SSOHandler{sso: sso}
}

// Config godoc
// @Summary Get SSO availability
// @Tags auth
// @Produce json
// @Success 200 {object} model.SSOConfigResponse
// @Router /api/v1/auth/sso/config [get]
func (h *SSOHandler) Config(c *gin.Context) {
	resp := model.SSOConfigResponse{Enabled: h.sso.Enabled()}
	if resp.Enabled {
		resp.LoginURL = "/api/v1/auth/sso/login"
	}
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Redirect to the OIDC provider
// @Tags auth
// @Success 302
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/auth/sso/login [get]
func (h *SSOHandler) Login(c *gin.Context) {
	if !h.sso.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "sso not configured"})
		return
	}

	state, err := newState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.sso.AuthCodeURL(state))
}

// Callback godoc
// @Summary OIDC callback
// @Description Exchanges the authorization code and returns a local bearer token.
// @Tags auth
// @Produce json
// @Param code query string true "authorization code"
// @Param state query string true "state"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.AuthResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/auth/sso/callback [get]
func (h *SSOHandler) Callback(c *gin.Context) {
	if !h.sso.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "sso not configured"})
		return
	}

	expected, err := c.Cookie(stateCookieName)
	if err != nil || expected == "" || c.Query("state") != expected {
		c.JSON(http.StatusUnauthorized, model.AuthResponse{Message: "state mismatch"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	token, accountID, err := h.sso.HandleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success:   true,
		Message:   "logged in",
		Token:     token,
		AccountID: accountID,
	})
}

func newState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
