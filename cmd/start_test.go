package cmd

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"filestorage/core/middleware/rayid"
	"filestorage/core/server"
	"filestorage/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewApp(t *testing.T) {
	engine, err := storage.NewEngine(t.TempDir())
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	app, err := newApp(server.Config{Address: "127.0.0.1:0", BodyLimit: 1 << 20}, engine, zap.New(core))
	require.NoError(t, err)

	t.Run("LogsLoadedFeatures", func(t *testing.T) {
		loaded := logs.FilterMessage("Feature loaded").All()
		require.Len(t, loaded, 1)
		assert.Equal(t, "objects", loaded[0].ContextMap()["feature"])
	})

	t.Run("ServesSwaggerDoc", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(body, &doc))
		require.Contains(t, doc.Paths, "/objects/{key}")
		for _, method := range []string{"put", "get", "delete"} {
			assert.Contains(t, doc.Paths["/objects/{key}"], method)
		}
		assert.Contains(t, doc.Paths, "/health")
	})

	t.Run("MountsObjects", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("PUT", "/objects/a/b", strings.NewReader("v")), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))

		handled := logs.FilterMessage("Request handled").All()
		require.NotEmpty(t, handled)
		last := handled[len(handled)-1].ContextMap()
		assert.Equal(t, "/objects/a/b", last["path"])
		assert.EqualValues(t, fiber.StatusCreated, last["status"])
	})
}
