package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/models"
)

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)

	cookies := env.login(t, "mirela")
	require.NotEmpty(t, cookies)

	w := env.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "mirela", user.Username)
	require.Equal(t, ws.ID, user.WorkshopID)
}

func TestAuthHandler_LoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)

	cases := []map[string]string{
		{"username": "mirela", "password": "gresit"},
		{"username": "nu-exista", "password": "parola123"},
	}

	var responses []apierrors.APIError
	for _, payload := range cases {
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp apierrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		responses = append(responses, resp)
	}

	// Wrong password and unknown username must be indistinguishable.
	require.Equal(t, responses[0], responses[1])
}

func TestAuthHandler_MeRequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_PasswordNeverSerialized(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)

	cookies := env.login(t, "mirela")
	w := env.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "password")
}
