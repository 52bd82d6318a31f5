package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/usecase"
	"blogpessoal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTheme_Success(t *testing.T) {
	mockUseCase := new(MockThemeUseCase)
	handler := NewThemeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/themes", handler.CreateTheme)

	mockUseCase.On("CreateTheme", mock.Anything, "Go").Return(&entity.Theme{ID: "theme-1", Description: "Go"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/themes", bytes.NewBufferString(`{"description":"Go"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var theme entity.Theme
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &theme))
	assert.Equal(t, "theme-1", theme.ID)
	mockUseCase.AssertExpectations(t)
}

func TestCreateTheme_MissingDescription(t *testing.T) {
	mockUseCase := new(MockThemeUseCase)
	handler := NewThemeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/themes", handler.CreateTheme)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/themes", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateTheme", mock.Anything, mock.Anything)
}

func TestGetTheme_NotFound(t *testing.T) {
	mockUseCase := new(MockThemeUseCase)
	handler := NewThemeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/themes/:id", handler.GetTheme)

	mockUseCase.On("GetTheme", mock.Anything, "missing").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/themes/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSearchThemes_RoutesBesideID(t *testing.T) {
	mockUseCase := new(MockThemeUseCase)
	handler := NewThemeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/themes/:id", handler.GetTheme)
	router.GET("/themes/description/:description", handler.SearchThemes)

	mockUseCase.On("SearchThemes", mock.Anything, "go").Return([]*entity.Theme{{ID: "theme-1", Description: "Golang"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/themes/description/go", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Golang")
	mockUseCase.AssertExpectations(t)
}

func TestDeleteTheme_Success(t *testing.T) {
	mockUseCase := new(MockThemeUseCase)
	handler := NewThemeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/themes/:id", handler.DeleteTheme)

	mockUseCase.On("DeleteTheme", mock.Anything, "theme-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/themes/theme-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}
