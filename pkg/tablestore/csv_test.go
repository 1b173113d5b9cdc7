package tablestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSVStore(t *testing.T) *CSVStore {
	t.Helper()
	s, err := NewCSVStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCSVStoreMissingFileIsEmpty(t *testing.T) {
	s := newTestCSVStore(t)

	tbl, err := s.Load(context.Background(), AttendanceLogs)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestCSVStoreRejectsUnknownTable(t *testing.T) {
	s := newTestCSVStore(t)

	_, err := s.Load(context.Background(), "salaries")
	assert.ErrorIs(t, err, ErrUnknownTable)

	err = s.Save(context.Background(), "salaries", NewTable())
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestCSVStoreRoundTripKeepsOrder(t *testing.T) {
	s := newTestCSVStore(t)
	ctx := context.Background()

	tbl := NewTable("employee_code", "date", "in_time", "out_time", "working_hours", "status")
	tbl.Append(Row{"employee_code": "e2", "date": "2024-03-05", "in_time": "09:00:00", "out_time": "", "working_hours": "", "status": "MIS"})
	tbl.Append(Row{"employee_code": "e1", "date": "2024-03-05", "in_time": "09:30:00", "out_time": "18:00:00", "working_hours": "8.5", "status": "LA"})
	require.NoError(t, s.Save(ctx, AttendanceLogs, tbl))

	got, err := s.Load(ctx, AttendanceLogs)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, got.Columns)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "e2", got.Rows[0]["employee_code"])
	assert.Equal(t, "18:00:00", got.Rows[1]["out_time"])
	assert.Equal(t, "", got.Rows[0]["out_time"])
}

func TestCSVStoreCoercesMalformedCells(t *testing.T) {
	s := newTestCSVStore(t)
	content := "\ufeffemployee_code,date,in_time\ne1,yesterday,9am\ne2,03/05/2024,10:00:00\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "attendance_logs.csv"), []byte(content), 0o644))

	got, err := s.Load(context.Background(), AttendanceLogs)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "employee_code", got.Columns[0])
	assert.Equal(t, "", got.Rows[0]["date"])
	assert.Equal(t, "", got.Rows[0]["in_time"])
	assert.Equal(t, "2024-03-05", got.Rows[1]["date"])
	assert.Equal(t, "10:00:00", got.Rows[1]["in_time"])
}

func TestCSVStoreSaveOverwrites(t *testing.T) {
	s := newTestCSVStore(t)
	ctx := context.Background()

	first := NewTable("id")
	first.Append(Row{"id": "1"})
	first.Append(Row{"id": "2"})
	require.NoError(t, s.Save(ctx, RegularizationRequests, first))

	second := NewTable("id")
	second.Append(Row{"id": "3"})
	require.NoError(t, s.Save(ctx, RegularizationRequests, second))

	got, err := s.Load(ctx, RegularizationRequests)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "3", got.Rows[0]["id"])
}

func TestCSVStoreSaveAllWritesEveryTable(t *testing.T) {
	s := newTestCSVStore(t)
	ctx := context.Background()

	att := NewTable("employee_code")
	att.Append(Row{"employee_code": "e1"})
	req := NewTable("id", "status")
	req.Append(Row{"id": "1", "status": "Approved"})

	require.NoError(t, s.SaveAll(ctx,
		Change{Name: AttendanceLogs, Table: att},
		Change{Name: RegularizationRequests, Table: req},
	))

	gotAtt, err := s.Load(ctx, AttendanceLogs)
	require.NoError(t, err)
	assert.Equal(t, 1, gotAtt.Len())
	gotReq, err := s.Load(ctx, RegularizationRequests)
	require.NoError(t, err)
	assert.Equal(t, "Approved", gotReq.Rows[0]["status"])

	_, err = os.Stat(filepath.Join(s.Dir(), journalName))
	assert.True(t, os.IsNotExist(err))
}

func TestCSVStoreSaveAllRejectsDuplicates(t *testing.T) {
	s := newTestCSVStore(t)
	err := s.SaveAll(context.Background(),
		Change{Name: Users, Table: NewTable()},
		Change{Name: Users, Table: NewTable()},
	)
	assert.ErrorIs(t, err, ErrDuplicateChange)
}

func TestCSVStoreRecoversInterruptedCommit(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	require.NoError(t, err)

	old := NewTable("id", "status")
	old.Append(Row{"id": "1", "status": "Pending"})
	require.NoError(t, s.Save(context.Background(), RegularizationRequests, old))

	staged := NewTable("id", "status")
	staged.Append(Row{"id": "1", "status": "Approved"})
	tmp, err := s.writeTemp(RegularizationRequests, staged)
	require.NoError(t, err)
	require.NoError(t, s.writeJournal(journal{Renames: []journalEntry{{From: tmp, To: s.path(RegularizationRequests)}}}))

	reopened, err := NewCSVStore(dir)
	require.NoError(t, err)

	got, err := reopened.Load(context.Background(), RegularizationRequests)
	require.NoError(t, err)
	assert.Equal(t, "Approved", got.Rows[0]["status"])
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}

func TestCSVStoreDiscardsUncommittedTemps(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	require.NoError(t, err)

	tmp, err := s.writeTemp(Users, NewTable("employee_code"))
	require.NoError(t, err)

	_, err = NewCSVStore(dir)
	require.NoError(t, err)
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "users.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestCSVStoreRejectsCorruptJournal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, journalName), []byte("{"), 0o644))

	_, err := NewCSVStore(dir)
	assert.Error(t, err)

	var j journal
	assert.Error(t, json.Unmarshal([]byte("{"), &j))
}
