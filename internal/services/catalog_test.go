package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBaselineServices(t *testing.T) {
	got := Catalog()

	require.Len(t, got, 4)
	assert.Equal(t, "emergency", got[0].ID)
	assert.Equal(t, "drain", got[1].ID)
	assert.Equal(t, "water-heater", got[2].ID)
	assert.Equal(t, "leak-detection", got[3].ID)

	for _, svc := range got {
		assert.NotEmpty(t, svc.Title, "service %s missing title", svc.ID)
		assert.NotEmpty(t, svc.Description, "service %s missing description", svc.ID)
		assert.NotEmpty(t, svc.Icon, "service %s missing icon", svc.ID)
	}
}

func TestCatalogDeterministic(t *testing.T) {
	first := Catalog()
	second := Catalog()

	assert.Equal(t, first, second)
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Title = "mutated"

	assert.Equal(t, "24/7 Emergency Plumbing", Catalog()[0].Title)
}

func TestListHandler(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string][]Service
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp["services"], 4)
	assert.Equal(t, Catalog(), resp["services"])
}
