package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmstancu/workshop-api/internal/models"
)

func TestMechanicHandler_AddAndList(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)
	cookies := env.login(t, "mirela")

	w := env.do(t, http.MethodPost, "/api/mechanics", map[string]string{"name": "  Ion Pop  "}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Mechanic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Ion Pop", created.Name)
	require.Equal(t, ws.ID, created.WorkshopID)

	w = env.do(t, http.MethodGet, "/api/mechanics", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Mechanics []models.Mechanic `json:"mechanics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Mechanics, 1)
}

func TestMechanicHandler_BlankNameSilentlyIgnored(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)
	cookies := env.login(t, "mirela")

	w := env.do(t, http.MethodPost, "/api/mechanics", map[string]string{"name": "   "}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Mechanic{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMechanicHandler_CrossTenantDeleteReadsAsNotFound(t *testing.T) {
	env := setupTestEnv(t)
	wsA := env.createWorkshop(t, "Atelier A")
	wsB := env.createWorkshop(t, "Atelier B")
	env.createUser(t, "ana", models.RoleUser, wsA.ID)
	env.createUser(t, "bogdan", models.RoleUser, wsB.ID)

	mechanic, err := env.rosterService.AddMechanic(wsA.ID, "Ion Pop")
	require.NoError(t, err)

	// The id exists globally, but belongs to another workshop.
	cookiesB := env.login(t, "bogdan")
	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/mechanics/%d", mechanic.ID), nil, cookiesB)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Mechanic{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestMechanicHandler_DeletePreservesDenormalizedName(t *testing.T) {
	env := setupTestEnv(t)
	ws := env.createWorkshop(t, "Atelier Unu")
	env.createUser(t, "mirela", models.RoleUser, ws.ID)
	cookies := env.login(t, "mirela")

	mechanic, err := env.rosterService.AddMechanic(ws.ID, "Ion Pop")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/workorders", workOrderPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/mechanics/%d", mechanic.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// The work order keeps the mechanic's name after the roster change.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/workorders/%d", created.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, "Ion Pop", fetched.MechanicName)
}
