package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/paseto"
	"Employee-Attendance-Portal/pkg/session"
	util "Employee-Attendance-Portal/pkg/utils"
)

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	secret, err := util.GenerateBase64Key(32)
	require.NoError(t, err)
	maker, err := paseto.NewMaker(secret)
	require.NoError(t, err)
	return session.NewManager(maker, time.Hour)
}

func newApp(sessions *session.Manager, gate *accessgate.Gate) *fiber.App {
	app := fiber.New()
	app.Use(SessionLoader(sessions))
	if gate != nil {
		app.Use(IPGate(gate, sessions, nil))
	}
	app.Get("/open", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		s, _ := CurrentSession(c)
		return c.SendString(s.EmployeeCode)
	})
	app.Get("/admin", AuthMiddleware(), AdminMiddleware(), func(c *fiber.Ctx) error { return c.SendString("admin") })
	return app
}

func get(t *testing.T, app *fiber.App, path, token, ip string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthAndAdminGuards(t *testing.T) {
	sessions := newSessions(t)
	app := newApp(sessions, nil)

	_, anonToken, err := sessions.Create()
	require.NoError(t, err)
	_, empToken, err := sessions.Login("", models.Employee{EmployeeCode: "emp1", Designation: models.DesignationEmployee})
	require.NoError(t, err)
	_, hrToken, err := sessions.Login("", models.Employee{EmployeeCode: "hr1", Designation: models.DesignationHR})
	require.NoError(t, err)

	assert.Equal(t, 401, get(t, app, "/me", "", ""))
	assert.Equal(t, 401, get(t, app, "/me", "garbage", ""))
	assert.Equal(t, 401, get(t, app, "/me", anonToken, ""))
	assert.Equal(t, 200, get(t, app, "/me", empToken, ""))
	assert.Equal(t, 403, get(t, app, "/admin", empToken, ""))
	assert.Equal(t, 200, get(t, app, "/admin", hrToken, ""))
}

func TestSessionCookieIsAccepted(t *testing.T) {
	sessions := newSessions(t)
	app := newApp(sessions, nil)
	_, token, err := sessions.Login("", models.Employee{EmployeeCode: "emp1", Designation: models.DesignationEmployee})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Cookie", SessionCookie+"="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestIPGateDeniesAndHonoursOverride(t *testing.T) {
	sessions := newSessions(t)
	gate, err := accessgate.New(filepath.Join(t.TempDir(), "ip_config.yaml"), accessgate.Options{RestrictionEnabled: true, OverrideCode: "letmein"})
	require.NoError(t, err)
	app := newApp(sessions, gate)

	assert.Equal(t, 200, get(t, app, "/open", "", "127.0.0.1"))

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
	var denied models.GateDeniedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&denied))
	assert.Equal(t, "203.0.113.9", denied.ClientIP)
	assert.Equal(t, OverridePath, denied.Override)

	anon, token, err := sessions.Create()
	require.NoError(t, err)
	assert.Equal(t, 403, get(t, app, "/open", token, "203.0.113.9"))
	require.NoError(t, sessions.GrantOverride(anon.ID))
	assert.Equal(t, 200, get(t, app, "/open", token, "203.0.113.9"))
}

func TestIPGateForcedOverrideIsOneShot(t *testing.T) {
	dir := t.TempDir()
	sessions := newSessions(t)
	gate, err := accessgate.New(filepath.Join(dir, "ip_config.yaml"), accessgate.Options{RestrictionEnabled: true})
	require.NoError(t, err)
	marker := filepath.Join(dir, ".force_override")
	require.NoError(t, os.WriteFile(marker, nil, 0o644))
	require.True(t, gate.ConsumeForceOverride(marker))
	app := newApp(sessions, gate)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	token := resp.Header.Get("X-Session-Token")
	require.NotEmpty(t, token)

	assert.Equal(t, 200, get(t, app, "/open", token, "203.0.113.9"))
	assert.Equal(t, 403, get(t, app, "/open", "", "203.0.113.9"))
}
