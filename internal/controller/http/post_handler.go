package http

import (
	"net/http"

	"blogpessoal/internal/usecase"
	"blogpessoal/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type PostRequest struct {
	Title   string `json:"title" binding:"required,min=5,max=100"`
	Text    string `json:"text" binding:"required,min=10,max=1000"`
	Image   string `json:"image" binding:"max=5000"`
	ThemeID string `json:"theme_id" binding:"required,uuid"`
}

func (r PostRequest) input() usecase.PostInput {
	return usecase.PostInput{
		Title:   r.Title,
		Text:    r.Text,
		Image:   r.Image,
		ThemeID: r.ThemeID,
	}
}

// ListPosts godoc
// @Summary      List posts
// @Description  List every post, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// SearchPosts godoc
// @Summary      Search posts by title
// @Description  Case-insensitive match on any part of the title
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        title path string true "Title fragment"
// @Success      200  {array}   entity.Post
// @Router       /posts/title/{title} [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	posts, err := h.postUseCase.SearchPosts(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListThemePosts godoc
// @Summary      List posts of a theme
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Theme ID"
// @Success      200  {array}   entity.Post
// @Router       /themes/{id}/posts [get]
func (h *PostHandler) ListThemePosts(c *gin.Context) {
	posts, err := h.postUseCase.ListThemePosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListUserPosts godoc
// @Summary      List posts of a user
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {array}   entity.Post
// @Router       /users/{id}/posts [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListUserPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Create post
// @Description  Create a post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.input())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Replace a post; only its owner may do so
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body PostRequest true "Post data"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
