package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paperstack/backend/internal/model"
	"github.com/paperstack/backend/internal/service"
)

type AuthHandler struct {
	auth   *service.AuthService
	tokens *service.TokenService
}

func NewAuthHandler(auth *service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Username, password and optional display names"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.AuthResponse
// @Failure 409 {object} model.AuthResponse
// @Failure 500 {object} model.AuthResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.AuthResponse{Message: "invalid request"})
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.AuthResponse{Message: "username and password are required"})
		return
	}

	token, accountID, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success:   true,
		Message:   "account created",
		Token:     token,
		AccountID: accountID,
	})
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.AuthResponse
// @Failure 401 {object} model.AuthResponse
// @Failure 500 {object} model.AuthResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.AuthResponse{Message: "invalid request"})
		return
	}

	token, accountID, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
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

// Refresh godoc
// @Summary Exchange a token for a fresh one
// @Description Accepts the token in the request body or the Authorization header. Expired tokens are accepted as long as the signature checks out and the account still exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest false "Token to refresh"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.AuthResponse
// @Failure 404 {object} model.AuthResponse
// @Failure 500 {object} model.AuthResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	_ = c.ShouldBindJSON(&req)
	token := req.Token
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}
	if token == "" {
		writeAuthError(c, service.ErrInvalidToken)
		return
	}

	newToken, accountID, err := h.tokens.Refresh(c.Request.Context(), token)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success:   true,
		Message:   "token refreshed",
		Token:     newToken,
		AccountID: accountID,
	})
}

// Logout godoc
// @Summary Logout
// @Description No server state changes; the client discards its token.
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		Message: "logged out",
	})
}

// Delete godoc
// @Summary Delete the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.AuthResponse
// @Failure 500 {object} model.AuthResponse
// @Router /api/v1/auth/account [delete]
func (h *AuthHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.auth.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success:   true,
		Message:   "account deleted",
		AccountID: user.ID,
	})
}

// Me godoc
// @Summary Get the authenticated identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AuthMeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.AuthMeResponse{
		AccountID: user.ID,
		Username:  user.Username,
	})
}

func writeAuthError(c *gin.Context, err error) {
	switch err {
	case service.ErrUsernameTaken:
		c.JSON(http.StatusConflict, model.AuthResponse{Message: err.Error()})
	case service.ErrInvalidCredentials, service.ErrInvalidToken:
		c.JSON(http.StatusUnauthorized, model.AuthResponse{Message: err.Error()})
	case service.ErrUserNotFound:
		c.JSON(http.StatusNotFound, model.AuthResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, model.AuthResponse{Message: "server error"})
	}
}
