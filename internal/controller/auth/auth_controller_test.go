package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/internal/repository"
	"github.com/achyut02/Ai-Placement-Tracker/internal/service"
	"github.com/achyut02/Ai-Placement-Tracker/internal/testhelpers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{JWTSecret: "controller-test-secret", Environment: "test"}
	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)
	controller := NewAuthController(authService, cfg)

	r := gin.New()
	grp := r.Group("/api/auth")
	grp.POST("/register", controller.Register)
	grp.POST("/login", controller.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var payload struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "alice@example.com", payload.User.Email)
	assert.NotContains(t, w.Body.String(), "secret123")
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter(t)

	// Name too short, email malformed, password too short.
	w := postJSON(r, "/api/auth/register", `{"name":"A","email":"nope","password":"123"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Len(t, env.Errors, 3)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	body := `{"name":"Bob","email":"bob@example.com","password":"secret123"}`
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/register", body).Code)

	w := postJSON(r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "email already exists", env.Message)
}

func TestLoginEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/register",
		`{"name":"Carol","email":"carol@example.com","password":"secret123"}`).Code)

	w := postJSON(r, "/api/auth/login", `{"email":"carol@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)

	w = postJSON(r, "/api/auth/login", `{"email":"carol@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid email or password", env.Message)
}
