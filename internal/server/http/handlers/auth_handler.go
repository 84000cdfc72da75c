package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digishoplabs/digishop/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToUserResponse(*user)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "registration successful",
		User:    &view,
	})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToUserResponse(*user)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    &view,
	})
}

// AdminLogin handles POST /api/user/admin. It behaves like Login but rejects
// accounts without the admin flag.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, token, err := h.facade.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToUserResponse(*user)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "admin login successful",
		Token:   token,
		User:    &view,
	})
}
