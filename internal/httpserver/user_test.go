package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amribrahim/goshop/internal/models"
)

func TestAdminCreateUser(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.signUp(t, "admin@example.com", models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/api/v1/user", map[string]string{
		"name":     "warehouse worker",
		"email":    "worker@example.com",
		"password": "password",
		"role":     models.RoleEmployee,
	}, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, "user created successfully", resp.Message)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Equal(t, models.RoleEmployee, user.Role)
}

func TestProfileEndpoints(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.signUp(t, "me@example.com", models.RoleUser)

	rec := env.do(t, http.MethodGet, "/api/v1/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.User
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &fetched))
	require.Equal(t, user.ID, fetched.ID)

	rec = env.do(t, http.MethodPatch, "/api/v1/profile", map[string]string{"phone": "555-0101"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &fetched))
	require.Equal(t, "555-0101", fetched.Phone)

	rec = env.do(t, http.MethodPatch, "/api/v1/profile", map[string]string{}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "no fields to update", decodeEnvelope(t, rec).Message)

	rec = env.do(t, http.MethodDelete, "/api/v1/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/profile", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
