package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleTemplateExternalNaming(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", token, map[string]interface{}{
		"name":             "Quarterly shelf check",
		"description":      "Weeks 0/4/8/12",
		"testingIntervals": []int{0, 4, 8, 12},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataObject(t, w)
	assert.Equal(t, []interface{}{float64(0), float64(4), float64(8), float64(12)}, data["testingIntervals"])
	assert.Equal(t, false, data["isPreset"])
	assert.NotContains(t, w.Body.String(), "testing_intervals")
	assert.NotContains(t, w.Body.String(), "is_preset")

	// Reading it back reproduces the record under the same naming
	id := data["id"].(string)
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reloaded := dataObject(t, w)
	assert.Equal(t, data["testingIntervals"], reloaded["testingIntervals"])
	assert.Equal(t, data["name"], reloaded["name"])
}

func TestScheduleTemplateIgnoresUnknownFields(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", token, map[string]interface{}{
		"name":             "With extras",
		"testingIntervals": []int{0, 2},
		"labBench":         "B-7",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "labBench")

	id := dataObject(t, w)["id"].(string)
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "With extras", dataObject(t, w)["name"])
}

func TestPresetVisibleAcrossUsersOwnedIsNot(t *testing.T) {
	router := setupAPI(t)
	_, aliceToken := authedUser(t, "alice@example.com")
	_, bobToken := authedUser(t, "bob@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", aliceToken, map[string]interface{}{
		"name":             "Standard 12-week",
		"testingIntervals": []int{0, 4, 8, 12},
		"isPreset":         true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	presetID := dataObject(t, w)["id"].(string)

	w = doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", aliceToken, map[string]interface{}{
		"name":             "Alice's cadence",
		"testingIntervals": []int{0, 2},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ownedID := dataObject(t, w)["id"].(string)

	// Bob's listing carries only the preset
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bobList := dataList(t, w)
	require.Len(t, bobList, 1)
	assert.Equal(t, presetID, bobList[0].(map[string]interface{})["id"])

	// Alice's listing carries both
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)

	// The presets endpoint works for everyone
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/presets", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	presets := dataList(t, w)
	require.Len(t, presets, 1)
	assert.Equal(t, presetID, presets[0].(map[string]interface{})["id"])

	// Foreign owned templates are reported as missing
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/"+ownedID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// But the preset itself is retrievable by anyone
	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/"+presetID, bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScheduleTemplateValidation(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", token, map[string]interface{}{
		"description": "missing name and intervals",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	fieldErrors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "testingIntervals")
}

func TestScheduleTemplateUpdateAndDelete(t *testing.T) {
	router := setupAPI(t)
	_, token := authedUser(t, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/v1/schedule-templates", token, map[string]interface{}{
		"name":             "Short run",
		"testingIntervals": []int{0, 2},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataObject(t, w)["id"].(string)

	// PATCH updates only the fields it names
	w = doRequest(t, router, http.MethodPatch, "/api/v1/schedule-templates/"+id, token, map[string]interface{}{
		"description": "two checkpoints",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataObject(t, w)
	assert.Equal(t, "Short run", updated["name"])
	assert.Equal(t, "two checkpoints", updated["description"])

	w = doRequest(t, router, http.MethodDelete, "/api/v1/schedule-templates/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/schedule-templates/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
