package integrity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kappa-h/fibulopedia/core/content/contenttest"
	"github.com/Kappa-h/fibulopedia/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, svc *integrity.Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	integrity.NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleCheck(t *testing.T) {
	app := newApp(t, newService(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report integrity.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.False(t, report.Clean)
	assert.Len(t, report.DanglingRefs, 2)
	assert.Equal(t, 8, report.Checked)
}

func TestHandleFilesCheck(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		app := newApp(t, newService(t))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/files", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Status string            `json:"status"`
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Empty(t, body.Errors)
	})

	t.Run("Degraded", func(t *testing.T) {
		store := contenttest.NewStoreWithout(t, "weapons.json")
		app := newApp(t, integrity.NewService(store, zap.NewNop()))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/files", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Status string            `json:"status"`
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "degraded", body.Status)
		assert.Contains(t, body.Errors, "weapons")
	})
}

func TestHandleReferencesCheck(t *testing.T) {
	app := newApp(t, newService(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/references", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		DanglingRefs []integrity.DanglingRef `json:"dangling_refs"`
		Clean        bool                    `json:"clean"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Clean)
	require.Len(t, body.DanglingRefs, 2)
	assert.Equal(t, "Ice Sword", body.DanglingRefs[0].Name)
}
