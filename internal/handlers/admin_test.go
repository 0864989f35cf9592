package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmstancu/workshop-api/internal/models"
)

func TestAdminHandler_CreateWorkshopDuplicateName(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Central")
	env.createUser(t, "admin", models.RoleAdmin, ws.ID)
	cookies := env.login(t, "admin")

	w := env.do(t, http.MethodPost, "/api/admin/workshops", map[string]string{"name": "Atelier Nou"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/admin/workshops", map[string]string{"name": "Atelier Nou"}, cookies)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_NonAdminForbidden(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Central")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)
	cookies := env.login(t, "mirela")

	w := env.do(t, http.MethodGet, "/api/admin/workshops", nil, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/admin/workshops", map[string]string{"name": "Atelier Nou"}, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminHandler_ProvisionUser(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Central")
	env.createUser(t, "admin", models.RoleAdmin, ws.ID)
	cookies := env.login(t, "admin")

	payload := map[string]interface{}{
		"username":    "angajat",
		"password":    "parola123",
		"workshop_id": ws.ID,
	}
	w := env.do(t, http.MethodPost, "/api/admin/users", payload, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "angajat", user.Username)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, ws.ID, user.WorkshopID)

	// Same username again collides across all tenants.
	w = env.do(t, http.MethodPost, "/api/admin/users", payload, cookies)
	require.Equal(t, http.StatusConflict, w.Code)

	// Unknown workshop rejects the provisioning.
	payload["username"] = "altul"
	payload["workshop_id"] = uint64(9999)
	w = env.do(t, http.MethodPost, "/api/admin/users", payload, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_Stats(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Central")
	env.createWorkshop(t, "Atelier Doi")
	env.createUser(t, "admin", models.RoleAdmin, ws.ID)
	cookies := env.login(t, "admin")

	w := env.do(t, http.MethodGet, "/api/admin/stats", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		WorkshopCount int64 `json:"workshop_count"`
		UserCount     int64 `json:"user_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, int64(2), stats.WorkshopCount)
	require.Equal(t, int64(1), stats.UserCount)
}
