package tablestore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// exerciseStore runs the same contract against any backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	att := NewTable("employee_code", "date", "in_time", "status")
	att.Append(Row{"employee_code": "e1", "date": "2024-03-05", "in_time": "09:00:00", "status": "MIS"})
	req := NewTable("id", "status")
	req.Append(Row{"id": "1", "status": "Approved"})

	require.NoError(t, s.SaveAll(ctx,
		Change{Name: AttendanceLogs, Table: att},
		Change{Name: RegularizationRequests, Table: req},
	))

	got, err := s.Load(ctx, AttendanceLogs)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, att.Columns, got.Columns)
	assert.Equal(t, "09:00:00", got.Rows[0]["in_time"])

	require.NoError(t, s.Save(ctx, AttendanceLogs, NewTable("employee_code")))
	got, err = s.Load(ctx, AttendanceLogs)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	_, err = s.Load(ctx, "bogus")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TABLESTORE_TEST_MONGO")
	if uri == "" {
		t.Skip("TABLESTORE_TEST_MONGO not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	s := NewMongoStore(client, "tablestore_test")
	t.Cleanup(func() {
		client.Database("tablestore_test").Drop(context.Background())
		s.Close(context.Background())
	})
	exerciseStore(t, s)
}

func TestMySQLStore(t *testing.T) {
	dsn := os.Getenv("TABLESTORE_TEST_MYSQL")
	if dsn == "" {
		t.Skip("TABLESTORE_TEST_MYSQL not set")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)

	s, err := NewMySQLStore(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	exerciseStore(t, s)
}

func TestMySQLRollsBackFailedTransaction(t *testing.T) {
	dsn := os.Getenv("TABLESTORE_TEST_MYSQL")
	if dsn == "" {
		t.Skip("TABLESTORE_TEST_MYSQL not set")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	s, err := NewMySQLStore(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	ctx := context.Background()

	keep := NewTable("id", "status")
	keep.Append(Row{"id": "1", "status": "Pending"})
	require.NoError(t, s.Save(ctx, RegularizationRequests, keep))

	boom := errors.New("boom")
	err = withTx(ctx, db, false, func(ctx context.Context, tx sqlTx) error {
		if err := replaceRows(ctx, tx, Change{Name: RegularizationRequests, Table: NewTable("id")}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Load(ctx, RegularizationRequests)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "Pending", got.Rows[0]["status"])
}

func TestCSVStoreContract(t *testing.T) {
	exerciseStore(t, newTestCSVStore(t))
}
