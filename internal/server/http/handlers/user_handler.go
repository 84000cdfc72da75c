package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digishoplabs/digishop/internal/server/http/dto"
	"github.com/digishoplabs/digishop/internal/usecase"
)

// UserHandler exposes admin-only user management.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/user/list.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	total := len(users)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Total:   &total,
		Users:   dto.ToUserResponses(users),
	})
}

// Update handles PUT /api/user/update.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), usecase.UpdateUserInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToUserResponse(*user)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "user updated",
		User:    &view,
	})
}

// Remove handles POST /api/user/remove.
func (h *UserHandler) Remove(c *gin.Context) {
	var req dto.RemoveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	if err := h.facade.RemoveUser(c.Request.Context(), req.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("user removed"))
}
