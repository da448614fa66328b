package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "user-post-service/internal/domain/post"
	"user-post-service/internal/usecase/post"
	"user-post-service/pkg/logger"
)

// PostHandler handles HTTP requests for post operations
type PostHandler struct {
	uc  post.Usecase
	log *zap.Logger
}

// NewPostHandler creates a new PostHandler instance
func NewPostHandler(uc post.Usecase, log *zap.Logger) *PostHandler {
	return &PostHandler{uc: uc, log: log}
}

// CreatePostRequest represents the HTTP request body for creating a post.
// userId is stored as given; it need not name an existing user.
type CreatePostRequest struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

// UpdatePostRequest only carries the title. A userId in the body is ignored.
type UpdatePostRequest struct {
	Title *string `json:"title"`
}

// PostResponse represents the HTTP response for post data
type PostResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

func toPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = PostResponse{ID: p.ID, UserID: p.UserID, Title: p.Title}
	}
	return out
}

func toPostResponse(p domain.Post) PostResponse {
	return PostResponse{ID: p.ID, UserID: p.UserID, Title: p.Title}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.uc.CreatePost(c.Request.Context(), post.CreatePostRequest{
		UserID: req.UserID,
		Title:  req.Title,
	})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(*resp))
}

// ListPosts handles GET /posts and GET /posts?userId=N.
// An empty userId lists every post; a non-numeric one matches no post.
func (h *PostHandler) ListPosts(c *gin.Context) {
	var (
		posts []domain.Post
		err   error
	)
	raw := c.Query("userId")
	switch userID, perr := strconv.ParseInt(raw, 10, 64); {
	case raw == "":
		posts, err = h.uc.ListPosts(c.Request.Context())
	case perr != nil:
		posts = []domain.Post{}
	default:
		posts, err = h.uc.ListPostsByUser(c.Request.Context(), userID)
	}
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}

// ListUserPosts handles GET /users/:id/posts
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	userID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	posts, err := h.uc.ListPostsByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	resp, err := h.uc.GetPost(c.Request.Context(), id)
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(*resp))
}

// UpdatePost handles PATCH /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.uc.UpdatePost(c.Request.Context(), post.UpdatePostRequest{ID: id, Title: req.Title})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(*resp))
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.uc.DeletePost(c.Request.Context(), id); err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), err)
		return
	}

	c.Status(http.StatusNoContent)
}
