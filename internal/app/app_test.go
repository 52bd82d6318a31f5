package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"
	"blogpessoal/pkg/config"
	"blogpessoal/pkg/database"
	"blogpessoal/pkg/jwt"
	"blogpessoal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteDB(database.MemorySQLiteDSN)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })

	a := &App{
		cfg:        &config.Config{Environment: "LOCAL", CORSAllowOrigins: []string{"*"}},
		log:        logger.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{}),
		db:         db,
		jwtService: jwt.NewService("test-secret"),
	}
	return &apiClient{t: t, router: a.Router()}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, path, &payload)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (c *apiClient) register(username string) *entity.User {
	c.t.Helper()
	w := c.do("POST", "/api/v1/users/register", map[string]string{
		"name":     "Test User",
		"username": username,
		"password": "secret123",
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())

	response := decode[struct {
		Token string       `json:"token"`
		User  *entity.User `json:"user"`
	}](c.t, w)
	c.token = response.Token
	return response.User
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do("GET", "/api/v1/posts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.token = "not-a-token"
	w = api.do("GET", "/api/v1/posts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFlow(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@example.com")

	w := api.do("POST", "/api/v1/users/register", map[string]string{
		"name":     "Another Ana",
		"username": "ana@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do("POST", "/api/v1/users/login", map[string]string{"username": "ana@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do("POST", "/api/v1/users/login", map[string]string{"username": "ana@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	w = api.do("GET", "/api/v1/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@example.com", decode[entity.User](t, w).Username)
}

func TestPostLifecycle(t *testing.T) {
	api := newTestAPI(t)
	user := api.register("ana@example.com")

	w := api.do("POST", "/api/v1/themes", map[string]string{"description": "Golang"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	theme := decode[entity.Theme](t, w)

	w = api.do("POST", "/api/v1/posts", map[string]string{
		"title":    "Hello world",
		"text":     "A first post with enough text",
		"theme_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.do("POST", "/api/v1/posts", map[string]string{
		"title":    "Hello world",
		"text":     "A first post with enough text",
		"theme_id": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	before := time.Now().Add(-time.Second)
	w = api.do("POST", "/api/v1/posts", map[string]string{
		"title":    "Hello world",
		"text":     "A first post with enough text",
		"theme_id": theme.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[entity.Post](t, w)
	assert.Equal(t, user.ID, post.UserID)
	assert.True(t, post.Date.After(before))
	require.NotNil(t, post.Theme)
	assert.Equal(t, "Golang", post.Theme.Description)

	w = api.do("GET", "/api/v1/posts/title/HELLO", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Post](t, w), 1)

	w = api.do("GET", "/api/v1/themes/"+theme.ID+"/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Post](t, w), 1)

	other := newTestAPIClientSharing(api)
	other.register("bob@example.com")
	w = other.do("DELETE", "/api/v1/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do("DELETE", "/api/v1/themes/"+theme.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do("GET", "/api/v1/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	api := newTestAPI(t)
	user := api.register("ana@example.com")

	w := api.do("POST", "/api/v1/themes", map[string]string{"description": "Golang"})
	require.Equal(t, http.StatusCreated, w.Code)
	theme := decode[entity.Theme](t, w)

	w = api.do("POST", "/api/v1/posts", map[string]string{
		"title":    "Hello world",
		"text":     "A first post with enough text",
		"theme_id": theme.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do("DELETE", "/api/v1/users/"+user.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	other := newTestAPIClientSharing(api)
	other.register("bob@example.com")
	w = other.do("GET", "/api/v1/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]entity.Post](t, w))
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@example.com")

	for _, path := range []string{"/api/v1/posts/abc", "/api/v1/themes/abc", "/api/v1/users/abc"} {
		w := api.do("GET", path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w := api.do("DELETE", "/api/v1/themes/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do("GET", "/api/v1/themes/abc/posts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUploadPhotoWithoutStorage(t *testing.T) {
	api := newTestAPI(t)
	api.register("ana@example.com")

	var body bytes.Buffer
	body.WriteString("--x\r\nContent-Disposition: form-data; name=\"photo\"; filename=\"me.png\"\r\nContent-Type: image/png\r\n\r\nimg\r\n--x--\r\n")
	req, _ := http.NewRequest("POST", "/api/v1/users/photo", &body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set("Authorization", "Bearer "+api.token)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func newTestAPIClientSharing(c *apiClient) *apiClient {
	return &apiClient{t: c.t, router: c.router}
}
