package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amribrahim/goshop/internal/models"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":     "test user",
		"email":    "register@example.com",
		"password": "password",
	}

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, "user has registered successfully", resp.Message)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Equal(t, "register@example.com", user.Email)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEmpty(t, user.ID)

	// The password hash never leaves the server.
	require.NotContains(t, rec.Body.String(), "password")

	rec = env.do(t, http.MethodPost, "/api/v1/auth/register", payload, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "user already exists", decodeEnvelope(t, rec).Message)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "login@example.com", models.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "password",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, "user logged in successfully", resp.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data["accessToken"])

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid email or password", decodeEnvelope(t, rec).Message)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/profile", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/profile", nil, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuard(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.signUp(t, "user@example.com", models.RoleUser)

	rec := env.do(t, http.MethodGet, "/api/v1/user", nil, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	_, adminToken := env.signUp(t, "admin@example.com", models.RoleAdmin)
	rec = env.do(t, http.MethodGet, "/api/v1/user", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
}
