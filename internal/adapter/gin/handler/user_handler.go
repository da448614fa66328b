package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "user-post-service/internal/domain/user"
	"user-post-service/internal/usecase/user"
	"user-post-service/pkg/logger"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Content is not validated; any string, including "", is stored.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest represents the HTTP request body for updating a user.
// Absent fields keep their stored value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Username: u.Username, Email: u.Email}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*resp))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	c.JSON(http.StatusOK, out)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*resp))
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:       id,
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*resp))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.Status(http.StatusNoContent)
}
