package search_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kappa-h/fibulopedia/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := search.NewHandler(newService(t))
	handler.RegisterRoutes(app)
	return app
}

type searchResponse struct {
	Query   string `json:"query"`
	Type    string `json:"type"`
	Count   int    `json:"count"`
	Results []struct {
		EntityType string `json:"entity_type"`
		Name       string `json:"name"`
		Score      int    `json:"score"`
	} `json:"results"`
}

func TestHandleSearch(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/search?q=fire", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fire", body.Query)
	assert.Equal(t, 5, body.Count)
	assert.Equal(t, "Fire Sword", body.Results[0].Name)
	assert.Equal(t, "weapon", body.Results[0].EntityType)
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/search", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Results)
}

func TestHandleSearchType(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/search/monsters?q=fire", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "monsters", body.Type)
	assert.Equal(t, 2, body.Count)
	for _, r := range body.Results {
		assert.Equal(t, "monster", r.EntityType)
	}
}
