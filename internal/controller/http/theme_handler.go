package http

import (
	"net/http"

	"blogpessoal/internal/usecase"
	"blogpessoal/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeUseCase usecase.ThemeUseCase
	logger       *logger.Logger
}

func NewThemeHandler(themeUseCase usecase.ThemeUseCase, logger *logger.Logger) *ThemeHandler {
	return &ThemeHandler{
		themeUseCase: themeUseCase,
		logger:       logger,
	}
}

type ThemeRequest struct {
	Description string `json:"description" binding:"required,max=255"`
}

// ListThemes godoc
// @Summary      List themes
// @Description  List every theme with its posts
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Theme
// @Failure      401  {object}  map[string]string
// @Router       /themes [get]
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	themes, err := h.themeUseCase.ListThemes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

// GetTheme godoc
// @Summary      Get theme by ID
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Theme ID"
// @Success      200  {object}  entity.Theme
// @Failure      404  {object}  map[string]string
// @Router       /themes/{id} [get]
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	theme, err := h.themeUseCase.GetTheme(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// SearchThemes godoc
// @Summary      Search themes by description
// @Description  Case-insensitive match on any part of the description
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Param        description path string true "Description fragment"
// @Success      200  {array}   entity.Theme
// @Router       /themes/description/{description} [get]
func (h *ThemeHandler) SearchThemes(c *gin.Context) {
	themes, err := h.themeUseCase.SearchThemes(c.Request.Context(), c.Param("description"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

// CreateTheme godoc
// @Summary      Create theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ThemeRequest true "Theme data"
// @Success      201  {object}  entity.Theme
// @Failure      400  {object}  map[string]string
// @Router       /themes [post]
func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.themeUseCase.CreateTheme(c.Request.Context(), req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, theme)
}

// UpdateTheme godoc
// @Summary      Update theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Theme ID"
// @Param        request body ThemeRequest true "Theme data"
// @Success      200  {object}  entity.Theme
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /themes/{id} [put]
func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.themeUseCase.UpdateTheme(c.Request.Context(), c.Param("id"), req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// DeleteTheme godoc
// @Summary      Delete theme
// @Description  Delete a theme and every post filed under it
// @Tags         themes
// @Security     BearerAuth
// @Param        id path string true "Theme ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /themes/{id} [delete]
func (h *ThemeHandler) DeleteTheme(c *gin.Context) {
	if err := h.themeUseCase.DeleteTheme(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
