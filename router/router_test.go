package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/ipreport"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/password"
	"Employee-Attendance-Portal/pkg/paseto"
	"Employee-Attendance-Portal/pkg/session"
	"Employee-Attendance-Portal/pkg/tablestore"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

type portal struct {
	app   *fiber.App
	store *tablestore.CSVStore
	gate  *accessgate.Gate
	now   time.Time
}

func newPortal(t *testing.T, gateOpts accessgate.Options) *portal {
	t.Helper()
	dir := t.TempDir()

	store, err := tablestore.NewCSVStore(filepath.Join(dir, "data"))
	require.NoError(t, err)

	secret, err := util.GenerateBase64Key(32)
	require.NoError(t, err)
	maker, err := paseto.NewMaker(secret)
	require.NoError(t, err)

	gate, err := accessgate.New(filepath.Join(dir, "ip_config.yaml"), gateOpts)
	require.NoError(t, err)

	employees := repository.NewEmployeeRepository(store)
	hashed, err := password.HashPassword("secret1")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, employees.Create(ctx, &models.Employee{EmployeeCode: "emp1", Name: "Asha Verma", Designation: models.DesignationEmployee, Password: hashed}))
	require.NoError(t, employees.Create(ctx, &models.Employee{EmployeeCode: "hr1", Name: "Priya Nair", Designation: models.DesignationHR, Password: "legacy"}))

	p := &portal{
		app:   fiber.New(),
		store: store,
		gate:  gate,
		now:   time.Date(2024, 3, 5, 9, 10, 0, 0, time.UTC),
	}
	SetupRoutes(p.app, Deps{
		Store:         store,
		Sessions:      session.NewManager(maker, time.Hour),
		Gate:          gate,
		Reported:      ipreport.NewStore(filepath.Join(dir, "reported_ips.json")),
		Metrics:       metrics.New(),
		Clock:         func() time.Time { return p.now },
		PhotosDir:     filepath.Join(dir, "photos"),
		BlogImagesDir: filepath.Join(dir, "blog_images"),
	})
	return p
}

func (p *portal) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "127.0.0.1")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func (p *portal) login(t *testing.T, username, pw string) string {
	t.Helper()
	resp, body := p.do(t, "POST", "/api/v1/auth/login", "", models.LoginPayload{Username: username, Password: pw})
	require.Equal(t, 200, resp.StatusCode, body)
	return body["token"].(string)
}

func TestLoginByCodeOrName(t *testing.T) {
	p := newPortal(t, accessgate.Options{})

	resp, _ := p.do(t, "POST", "/api/v1/auth/login", "", models.LoginPayload{Username: "emp1", Password: "wrong"})
	assert.Equal(t, 401, resp.StatusCode)

	p.login(t, "EMP1", "secret1")
	token := p.login(t, "asha verma", "secret1")

	resp, body := p.do(t, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "emp1", body["employee"].(map[string]any)["employee_code"])

	resp, _ = p.do(t, "POST", "/api/v1/auth/logout", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = p.do(t, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLegacyPasswordIsUpgradedOnLogin(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	p.login(t, "hr1", "legacy")

	emp, err := repository.NewEmployeeRepository(p.store).FindByCode(context.Background(), "hr1")
	require.NoError(t, err)
	assert.True(t, password.IsHashed(emp.Password))
	p.login(t, "hr1", "legacy")
}

func TestChangePassword(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	token := p.login(t, "emp1", "secret1")

	resp, _ := p.do(t, "POST", "/api/v1/users/change-password", token, models.ChangePasswordPayload{
		CurrentPassword: "wrong", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	})
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = p.do(t, "POST", "/api/v1/users/change-password", token, models.ChangePasswordPayload{
		CurrentPassword: "secret1", NewPassword: "newpass1", ConfirmPassword: "other11",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = p.do(t, "POST", "/api/v1/users/change-password", token, models.ChangePasswordPayload{
		CurrentPassword: "secret1", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	})
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = p.do(t, "POST", "/api/v1/auth/login", "", models.LoginPayload{Username: "emp1", Password: "secret1"})
	assert.Equal(t, 401, resp.StatusCode)
	p.login(t, "emp1", "newpass1")
}

func TestAttendanceAndRegularizationFlow(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	emp := p.login(t, "emp1", "secret1")
	hr := p.login(t, "hr1", "legacy")

	resp, body := p.do(t, "POST", "/api/v1/attendance/record", emp, models.AttendanceActionPayload{Action: "IN"})
	require.Equal(t, 200, resp.StatusCode, body)
	assert.Equal(t, "Checked in at 09:10:00", body["message"])

	resp, _ = p.do(t, "POST", "/api/v1/attendance/record", emp, models.AttendanceActionPayload{Action: "IN"})
	assert.Equal(t, 409, resp.StatusCode)

	resp, _ = p.do(t, "POST", "/api/v1/attendance/record", emp, models.AttendanceActionPayload{Action: "LUNCH"})
	assert.Equal(t, 400, resp.StatusCode)

	resp, body = p.do(t, "POST", "/api/v1/regularizations", emp, models.RegularizationCreatePayload{
		Date: "2024-03-05", RequestType: "Correct Out-Time", Time: "18:00", Reason: "Forgot to check out",
	})
	require.Equal(t, 201, resp.StatusCode, body)
	id := body["request"].(map[string]any)["id"].(float64)
	assert.Equal(t, float64(1), id)

	resp, _ = p.do(t, "POST", "/api/v1/regularizations", emp, models.RegularizationCreatePayload{
		Date: "2024-03-06", RequestType: "Correct In-Time", Time: "09:00", Reason: "future",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = p.do(t, "GET", "/api/v1/admin/regularizations/pending", emp, nil)
	assert.Equal(t, 403, resp.StatusCode)

	resp, body = p.do(t, "GET", "/api/v1/admin/regularizations/pending", hr, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])

	resp, body = p.do(t, "PUT", "/api/v1/admin/regularizations/1/approve", hr, nil)
	require.Equal(t, 200, resp.StatusCode, body)
	record := body["record"].(map[string]any)
	assert.Equal(t, "18:00:00", record["out_time"])
	assert.Equal(t, "P", record["status"])
	assert.InDelta(t, 8.83, record["working_hours"], 0.001)

	resp, _ = p.do(t, "PUT", "/api/v1/admin/regularizations/1/reject", hr, nil)
	assert.Equal(t, 409, resp.StatusCode)
	resp, _ = p.do(t, "PUT", "/api/v1/admin/regularizations/99/approve", hr, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp, body = p.do(t, "GET", "/api/v1/attendance/calendar?year=2024&month=3", emp, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(1), body["acknowledged"])

	resp, body = p.do(t, "GET", "/api/v1/regularizations/mine", emp, nil)
	require.Equal(t, 200, resp.StatusCode)
	reqs := body["requests"].([]any)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Completed", reqs[0].(map[string]any)["status"])

	resp, _ = p.do(t, "POST", "/api/v1/attendance/record", emp, models.AttendanceActionPayload{Action: "OUT"})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestAdminEmployeesAndHolidays(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	hr := p.login(t, "hr1", "legacy")

	resp, body := p.do(t, "POST", "/api/v1/admin/employees", hr, models.EmployeeCreatePayload{
		EmployeeCode: "TR9", Name: "Ravi Kumar", Designation: "trainer", Password: "abcdef",
	})
	require.Equal(t, 201, resp.StatusCode, body)
	assert.Equal(t, "tr9", body["employee_code"])
	assert.Nil(t, body["password"])

	resp, _ = p.do(t, "POST", "/api/v1/admin/employees", hr, models.EmployeeCreatePayload{
		EmployeeCode: "tr9", Name: "Dup", Designation: "EMPLOYEE", Password: "abcdef",
	})
	assert.Equal(t, 409, resp.StatusCode)

	resp, body = p.do(t, "PUT", "/api/v1/admin/employees/tr9", hr, models.EmployeeUpdatePayload{Name: "Ravi K"})
	require.Equal(t, 200, resp.StatusCode, body)
	assert.Equal(t, "Ravi K", body["name"])

	resp, body = p.do(t, "GET", "/api/v1/admin/employees", hr, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(3), body["total"])

	resp, body = p.do(t, "POST", "/api/v1/admin/holidays", hr, models.HolidayCreatePayload{Name: "Republic Day", Date: "2020-01-26", RRule: "FREQ=YEARLY"})
	require.Equal(t, 201, resp.StatusCode, body)

	resp, body = p.do(t, "GET", "/api/v1/holidays?year=2024", hr, nil)
	require.Equal(t, 200, resp.StatusCode)
	holidays := body["holidays"].([]any)
	require.Len(t, holidays, 1)
	assert.Equal(t, "2024-01-26", holidays[0].(map[string]any)["date"])
}

func TestPostsBoard(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	emp := p.login(t, "emp1", "secret1")
	hr := p.login(t, "hr1", "legacy")

	resp, _ := p.do(t, "POST", "/api/v1/posts", emp, models.PostCreatePayload{Title: "Notice", Content: "x", PostType: "Notice"})
	assert.Equal(t, 403, resp.StatusCode)

	resp, blog := p.do(t, "POST", "/api/v1/posts", emp, models.PostCreatePayload{Title: "Hello", Content: "First post"})
	require.Equal(t, 201, resp.StatusCode, blog)
	p.now = p.now.Add(-time.Hour)
	resp, _ = p.do(t, "POST", "/api/v1/posts", hr, models.PostCreatePayload{Title: "Closed Friday", Content: "Office closed", PostType: "Notice"})
	require.Equal(t, 201, resp.StatusCode)

	resp, body := p.do(t, "GET", "/api/v1/posts", emp, nil)
	require.Equal(t, 200, resp.StatusCode)
	posts := body["posts"].([]any)
	require.Len(t, posts, 2)
	assert.Equal(t, "Notice", posts[0].(map[string]any)["post_type"])

	resp, _ = p.do(t, "DELETE", "/api/v1/admin/posts/"+blog["id"].(string), hr, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = p.do(t, "DELETE", "/api/v1/admin/posts/"+blog["id"].(string), hr, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func (p *portal) uploadPhoto(t *testing.T, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="me.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/users/me/photo", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPhotoUploadAndBadge(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	emp := p.login(t, "emp1", "secret1")

	require.Equal(t, 200, p.uploadPhoto(t, emp).StatusCode)

	resp, _ := p.do(t, "GET", "/api/v1/users/emp1/photo", emp, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = p.do(t, "GET", "/api/v1/users/emp1/badge", emp, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, _ = p.do(t, "GET", "/api/v1/users/hr1/badge", emp, nil)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestPhotoForDottedEmployeeCode(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	hr := p.login(t, "hr1", "legacy")

	resp, body := p.do(t, "POST", "/api/v1/admin/employees", hr, models.EmployeeCreatePayload{
		EmployeeCode: "john.doe", Name: "John Doe", Designation: "EMPLOYEE", Password: "abcdef",
	})
	require.Equal(t, 201, resp.StatusCode, body)
	resp, _ = p.do(t, "POST", "/api/v1/admin/employees", hr, models.EmployeeCreatePayload{
		EmployeeCode: "../etc", Name: "Sneaky", Designation: "EMPLOYEE", Password: "abcdef",
	})
	assert.Equal(t, 400, resp.StatusCode)

	john := p.login(t, "john.doe", "abcdef")
	require.Equal(t, 200, p.uploadPhoto(t, john).StatusCode)

	resp, _ = p.do(t, "GET", "/api/v1/users/john.doe/photo", john, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = p.do(t, "GET", "/api/v1/users/..%2Fdata/photo", john, nil)
	assert.NotEqual(t, 200, resp.StatusCode)
}

func TestGateAndIPConfig(t *testing.T) {
	p := newPortal(t, accessgate.Options{RestrictionEnabled: true, OverrideCode: "open-sesame"})
	hr := p.login(t, "hr1", "legacy")

	resp, body := p.do(t, "PUT", "/api/v1/admin/ip-config", hr, map[string]any{"allowed_ips": []string{"10.0.0.300"}})
	assert.Equal(t, 400, resp.StatusCode, body)

	resp, body = p.do(t, "PUT", "/api/v1/admin/ip-config", hr, map[string]any{"allowed_ips": []string{"127.0.0.1", "10.0.0.7"}})
	require.Equal(t, 200, resp.StatusCode, body)
	assert.Equal(t, true, body["restriction_active"])

	remote := func(token string) *http.Response {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte(`{"username":"emp1","password":"secret1"}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.50")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := p.app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}
	assert.Equal(t, 403, remote("").StatusCode)

	req := httptest.NewRequest("POST", "/api/v1/gate/override", bytes.NewReader([]byte(`{"code":"wrong"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.50")
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/v1/gate/override", bytes.NewReader([]byte(`{"code":"open-sesame"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.50")
	resp, err = p.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var granted models.OverrideResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&granted))

	assert.Equal(t, 200, remote(granted.Token).StatusCode)

	resp, body = p.do(t, "GET", "/api/v1/admin/reported-ips", hr, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body["reported_ips"])
}

func TestMetricsEndpoint(t *testing.T) {
	p := newPortal(t, accessgate.Options{})
	resp, err := p.app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
