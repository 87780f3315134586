package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, target string, handler fiber.Handler) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestIntParam(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		request(t, "/?min=42", func(c *fiber.Ctx) error {
			v, err := web.IntParam(c, "min")
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, 42, *v)
			return nil
		})
	})

	t.Run("Missing", func(t *testing.T) {
		request(t, "/", func(c *fiber.Ctx) error {
			v, err := web.IntParam(c, "min")
			require.NoError(t, err)
			assert.Nil(t, v)
			return nil
		})
	})

	t.Run("Invalid", func(t *testing.T) {
		request(t, "/?min=heavy", func(c *fiber.Ctx) error {
			_, err := web.IntParam(c, "min")
			assert.Error(t, err)
			return nil
		})
	})
}

func TestFloatParam(t *testing.T) {
	request(t, "/?max_weight=23.5", func(c *fiber.Ctx) error {
		v, err := web.FloatParam(c, "max_weight")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 23.5, *v)
		return nil
	})
}
