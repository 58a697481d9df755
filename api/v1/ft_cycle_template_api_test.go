package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFTCycleTemplateCRUD(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/ft-cycle-templates", token, map[string]interface{}{
		"name":        "3-cycle stress",
		"description": "thaw/test pairs across three cycles",
		"cycles": []map[string]interface{}{
			{"cycle": 1, "thawDay": 1, "testDay": 2},
			{"cycle": 2, "thawDay": 8, "testDay": 9},
			{"cycle": 3, "thawDay": 15, "testDay": 16},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataObject(t, w)
	id := data["id"].(string)
	cycles, ok := data["cycles"].([]interface{})
	require.True(t, ok)
	require.Len(t, cycles, 3)
	first := cycles[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["cycle"])
	assert.Equal(t, float64(1), first["thawDay"])
	assert.Equal(t, float64(2), first["testDay"])

	// Stored definitions come back unchanged
	w = doRequest(t, router, http.MethodGet, "/api/v1/ft-cycle-templates/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataObject(t, w)["cycles"].([]interface{}), 3)

	w = doRequest(t, router, http.MethodPatch, "/api/v1/ft-cycle-templates/"+id, token, map[string]interface{}{
		"name": "renamed stress plan",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "renamed stress plan", dataObject(t, w)["name"])

	w = doRequest(t, router, http.MethodDelete, "/api/v1/ft-cycle-templates/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/ft-cycle-templates/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Hour-count cycle definitions are an accepted alternate shape and must
// come back exactly as submitted, not coerced into day-indexed entries.
func TestFTCycleTemplateKeepsHourCountCycles(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/ft-cycle-templates", token, map[string]interface{}{
		"name":   "hour-count plan",
		"cycles": []map[string]interface{}{{"freezeHours": 24, "thawHours": 12}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataObject(t, w)["id"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/ft-cycle-templates/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cycles, ok := dataObject(t, w)["cycles"].([]interface{})
	require.True(t, ok)
	require.Len(t, cycles, 1)
	entry := cycles[0].(map[string]interface{})
	assert.Equal(t, float64(24), entry["freezeHours"])
	assert.Equal(t, float64(12), entry["thawHours"])
	assert.NotContains(t, entry, "cycle")
	assert.NotContains(t, entry, "thawDay")
}

func TestFTCycleTemplatesAreOwnerScoped(t *testing.T) {
	router := setupAPI(t)
	_, aliceToken := authedUser(t, "alice@example.com")
	_, bobToken := authedUser(t, "bob@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/ft-cycle-templates", aliceToken, map[string]interface{}{
		"name":   "Alice's cycles",
		"cycles": []map[string]interface{}{{"cycle": 1, "thawDay": 1, "testDay": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataObject(t, w)["id"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/ft-cycle-templates", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, dataList(t, w))

	w = doRequest(t, router, http.MethodGet, "/api/v1/ft-cycle-templates/"+id, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
