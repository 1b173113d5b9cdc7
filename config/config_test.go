package config

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/pkg/tablestore"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/portal")
	t.Setenv("SESSION_TTL_HOURS", "nope")
	t.Setenv("IP_RESTRICTION_ENABLED", "off")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := FromEnv()
	assert.Equal(t, "csv", cfg.StoreDriver)
	assert.Equal(t, "/srv/portal/ip_config.yaml", cfg.IPConfigPath)
	assert.Equal(t, "/srv/portal/reported_ips.json", cfg.IPReportedPath)
	assert.Equal(t, "/srv/portal/.force_override", cfg.ForceOverridePath())
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.IPRestrictionEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := &AppConfig{Timezone: "Nowhere/Invalid"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestOpenStoreCSVWithCache(t *testing.T) {
	cfg := &AppConfig{StoreDriver: "csv", DataDir: t.TempDir(), TableCache: true}
	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := store.(*tablestore.CachedStore)
	assert.True(t, ok)

	cfg.StoreDriver = "sqlite"
	_, err = OpenStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestCORSAllowList(t *testing.T) {
	app := fiber.New()
	SetupCORS(app, []string{"http://a.test"})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://a.test")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://a.test", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
