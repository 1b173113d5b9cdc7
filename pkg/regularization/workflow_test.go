package regularization

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
	"Employee-Attendance-Portal/repository"
)

var now = time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC)

type fixture struct {
	store      tablestore.Store
	workflow   *Workflow
	attendance repository.AttendanceRepository
	requests   repository.RegularizationRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := tablestore.NewCSVStore(t.TempDir())
	require.NoError(t, err)
	return fixtureOn(store)
}

func fixtureOn(store tablestore.Store) fixture {
	att := repository.NewAttendanceRepository(store)
	reqs := repository.NewRegularizationRepository(store)
	return fixture{store: store, workflow: NewWorkflow(store, att, reqs), attendance: att, requests: reqs}
}

// seededFixture opens a CSV store over tables written verbatim.
func seededFixture(t *testing.T, tables map[string]string) fixture {
	t.Helper()
	dir := t.TempDir()
	for name, content := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".csv"), []byte(content), 0o644))
	}
	store, err := tablestore.NewCSVStore(dir)
	require.NoError(t, err)
	return fixtureOn(store)
}

const requestHeader = "id,employee_code,date,request_type,requested_in_time,requested_out_time,reason,status,request_timestamp\n"

func submit(t *testing.T, f fixture, code, date string, typ models.RequestType, clock string) *models.RegularizationRequest {
	t.Helper()
	req, err := f.workflow.Submit(context.Background(), SubmitInput{
		EmployeeCode: code, Date: date, RequestType: typ, Time: clock, Reason: "forgot to punch",
	}, now)
	require.NoError(t, err)
	return req
}

func TestSubmitAssignsSequentialIDs(t *testing.T) {
	f := newFixture(t)

	first := submit(t, f, "EMP1", "2024-03-05", models.RequestCorrectIn, "09:00")
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "emp1", first.EmployeeCode)
	assert.Equal(t, "09:00:00", first.RequestedInTime)
	assert.Empty(t, first.RequestedOutTime)
	assert.Equal(t, models.RequestPending, first.Status)
	assert.Equal(t, "2024-03-10 11:00:00", first.RequestTimestamp)

	second := submit(t, f, "emp2", "2024-03-05", models.RequestCorrectOut, "18:15:00")
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "18:15:00", second.RequestedOutTime)
}

func TestSubmitIDFollowsMaxNotCount(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.requests.SaveAll(context.Background(), []models.RegularizationRequest{
		{ID: 7, EmployeeCode: "e1", Date: "2024-03-01", RequestType: models.RequestCorrectIn, RequestedInTime: "09:00:00", Reason: "r", Status: models.RequestRejected},
	}))
	req := submit(t, f, "e1", "2024-03-02", models.RequestCorrectIn, "09:00")
	assert.Equal(t, 8, req.ID)
}

func TestSubmitRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := SubmitInput{EmployeeCode: "e1", Date: "2024-03-05", RequestType: models.RequestCorrectIn, Time: "09:00", Reason: "late bus"}

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
		want   error
	}{
		{"blank reason", func(in *SubmitInput) { in.Reason = "   " }, ErrReasonRequired},
		{"future date", func(in *SubmitInput) { in.Date = "2024-03-11" }, ErrFutureDate},
		{"bad date", func(in *SubmitInput) { in.Date = "05/03/2024" }, ErrInvalidDate},
		{"bad type", func(in *SubmitInput) { in.RequestType = "Swap" }, ErrInvalidRequestType},
		{"bad time", func(in *SubmitInput) { in.Time = "noon" }, ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := f.workflow.Submit(ctx, in, now)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	all, err := f.requests.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = f.workflow.Submit(ctx, SubmitInput{EmployeeCode: "e1", Date: "2024-03-10", RequestType: models.RequestCorrectIn, Time: "09:00", Reason: "today"}, now)
	assert.NoError(t, err)
}

func TestApproveWithoutRecordCreatesMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")

	d, err := f.workflow.Approve(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, d.Request.Status)
	assert.Equal(t, models.StatusMissing, d.Record.Status)

	rec, err := f.attendance.FindByEmployeeAndDate(ctx, "e1", "2024-03-05")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "09:00:00", rec.InTime)
	assert.Empty(t, rec.OutTime)
	assert.Nil(t, rec.WorkingHours)
	assert.Equal(t, models.StatusMissing, rec.Status)
}

func TestApproveOutTimeWithoutRecordCreatesOutOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectOut, "18:00")

	_, err := f.workflow.Approve(ctx, req.ID)
	require.NoError(t, err)

	rec, err := f.attendance.FindByEmployeeAndDate(ctx, "e1", "2024-03-05")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Empty(t, rec.InTime)
	assert.Equal(t, "18:00:00", rec.OutTime)
	assert.Equal(t, models.StatusMissing, rec.Status)
}

func TestApproveCompletesExistingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.attendance.SaveAll(ctx, []models.AttendanceRecord{
		{EmployeeCode: "e1", Date: "2024-03-05", InTime: "09:30:00", Status: models.StatusLate},
	}))
	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectOut, "18:00")

	d, err := f.workflow.Approve(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, d.Record.WorkingHours)
	assert.Equal(t, 8.5, *d.Record.WorkingHours)
	assert.Equal(t, models.StatusPresent, d.Record.Status)

	all, err := f.attendance.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, models.StatusPresent, all[0].Status)
}

func TestApproveOvernightCorrection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.attendance.SaveAll(ctx, []models.AttendanceRecord{
		{EmployeeCode: "e1", Date: "2024-03-05", OutTime: "02:00:00", Status: models.StatusMissing},
	}))
	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "22:00")

	d, err := f.workflow.Approve(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, *d.Record.WorkingHours)
}

func TestRejectLeavesAttendanceUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := []models.AttendanceRecord{
		{EmployeeCode: "e1", Date: "2024-03-05", InTime: "09:30:00", Status: models.StatusLate},
		{EmployeeCode: "e2", Date: "2024-03-05", InTime: "09:00:00", Status: models.StatusMissing},
	}
	require.NoError(t, f.attendance.SaveAll(ctx, before))
	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectOut, "18:00")

	d, err := f.workflow.Reject(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, d.Request.Status)
	assert.Nil(t, d.Record)

	after, err := f.attendance.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDecisionsRequirePendingRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.workflow.Approve(ctx, 42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	_, err = f.workflow.Reject(ctx, 42)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")
	_, err = f.workflow.Reject(ctx, req.ID)
	require.NoError(t, err)

	_, err = f.workflow.Approve(ctx, req.ID)
	assert.ErrorIs(t, err, ErrNotPending)

	all, err := f.attendance.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := submit(t, f, "e2", "2024-03-05", models.RequestCorrectIn, "09:00")
	b := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")
	c := submit(t, f, "e1", "2024-03-06", models.RequestCorrectOut, "18:00")
	_, err := f.workflow.Approve(ctx, b.ID)
	require.NoError(t, err)

	pending, err := f.workflow.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, a.ID, pending[0].ID)
	assert.Equal(t, c.ID, pending[1].ID)

	mine, err := f.workflow.ListForEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestAcknowledgeCompletesOwnApprovedRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mine := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")
	other := submit(t, f, "e2", "2024-03-05", models.RequestCorrectIn, "09:00")
	submit(t, f, "e1", "2024-03-06", models.RequestCorrectIn, "09:00")
	_, err := f.workflow.Approve(ctx, mine.ID)
	require.NoError(t, err)
	_, err = f.workflow.Approve(ctx, other.ID)
	require.NoError(t, err)

	n, err := f.workflow.Acknowledge(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.workflow.Acknowledge(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := f.requests.FindAll(ctx)
	require.NoError(t, err)
	statuses := map[int]models.RequestStatus{}
	for _, r := range all {
		statuses[r.ID] = r.Status
	}
	assert.Equal(t, models.RequestCompleted, statuses[mine.ID])
	assert.Equal(t, models.RequestApproved, statuses[other.ID])
	assert.Equal(t, models.RequestPending, statuses[3])
}

type failingCommitStore struct {
	tablestore.Store
}

func (s failingCommitStore) SaveAll(context.Context, ...tablestore.Change) error {
	return errors.New("disk full")
}

func TestApproveIsAllOrNothing(t *testing.T) {
	base, err := tablestore.NewCSVStore(t.TempDir())
	require.NoError(t, err)
	ok := fixtureOn(base)
	req := submit(t, ok, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")

	broken := fixtureOn(failingCommitStore{Store: base})
	_, err = broken.workflow.Approve(context.Background(), req.ID)
	require.Error(t, err)

	att, err := ok.attendance.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, att)
	reqs, err := ok.requests.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, reqs[0].Status)
}

func TestSubmitNextToMalformedRow(t *testing.T) {
	f := seededFixture(t, map[string]string{
		tablestore.RegularizationRequests: requestHeader +
			"1,e9,2024-03-01,Correct In-Time,09:00:00,,,Pending,2024-03-02 10:00:00\n" +
			"x,e8,2024-03-01,Correct In-Time,09:00:00,,typo,Pending,\n",
	})
	ctx := context.Background()

	req := submit(t, f, "e1", "2024-03-05", models.RequestCorrectIn, "09:00")
	assert.Equal(t, 2, req.ID)

	table, err := f.store.Load(ctx, tablestore.RegularizationRequests)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	var ids []string
	for _, r := range table.Rows {
		ids = append(ids, r["id"])
	}
	assert.ElementsMatch(t, []string{"1", "2", "x"}, ids)

	_, err = f.workflow.Reject(ctx, req.ID)
	require.NoError(t, err)
}

func TestApproveRefusesMalformedRequest(t *testing.T) {
	f := seededFixture(t, map[string]string{
		tablestore.AttendanceLogs: "employee_code,date,in_time,out_time,working_hours,status\n" +
			"e1,2024-03-01,09:00:00,,,MIS\n",
		tablestore.RegularizationRequests: requestHeader +
			"1,e1,2024-03-01,Correct In-Time,9:00 AM,,forgot,Pending,2024-03-02 10:00:00\n",
	})
	ctx := context.Background()

	_, err := f.workflow.Approve(ctx, 1)
	assert.ErrorIs(t, err, ErrMalformedRequest)
	_, err = f.workflow.Reject(ctx, 1)
	assert.ErrorIs(t, err, ErrMalformedRequest)

	rec, err := f.attendance.FindByEmployeeAndDate(ctx, "e1", "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "09:00:00", rec.InTime)
	assert.Equal(t, models.StatusMissing, rec.Status)

	pending, err := f.workflow.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.RequestPending, pending[0].Status)
}

func TestAcknowledgeSkipsMalformedApproved(t *testing.T) {
	f := seededFixture(t, map[string]string{
		tablestore.RegularizationRequests: requestHeader +
			"1,e1,2024-03-01,Correct In-Time,09:00:00,,,Approved,2024-03-02 10:00:00\n" +
			"2,e1,2024-03-02,Correct Out-Time,,18:00:00,late train,Approved,2024-03-03 10:00:00\n",
	})
	ctx := context.Background()

	n, err := f.workflow.Acknowledge(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := f.requests.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.RequestApproved, all[0].Status)
	assert.Equal(t, models.RequestCompleted, all[1].Status)
}
