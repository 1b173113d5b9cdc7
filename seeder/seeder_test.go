package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/password"
	"Employee-Attendance-Portal/pkg/tablestore"
	"Employee-Attendance-Portal/repository"
)

func TestSeedAdminOnlyOnEmptyTable(t *testing.T) {
	store, err := tablestore.NewCSVStore(t.TempDir())
	require.NoError(t, err)
	employees := repository.NewEmployeeRepository(store)

	created, err := SeedAdmin(employees, AdminAccount{Code: "HR001", Name: "HR Admin", Password: "changeme"})
	require.NoError(t, err)
	assert.True(t, created)

	emp, err := employees.FindByCode(context.Background(), "hr001")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, models.DesignationHR, emp.Designation)
	ok, upgrade := password.CheckPassword(emp.Password, "changeme")
	assert.True(t, ok)
	assert.False(t, upgrade)

	created, err = SeedAdmin(employees, AdminAccount{Code: "hr002", Name: "Other"})
	require.NoError(t, err)
	assert.False(t, created)
}
