package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
)

func at(h, m, s int) time.Time {
	return time.Date(2024, 3, 5, h, m, s, 0, time.UTC)
}

func TestIsLate(t *testing.T) {
	tests := []struct {
		name string
		d    models.Designation
		t    time.Time
		want bool
	}{
		{"employee on threshold", models.DesignationEmployee, at(9, 15, 59), false},
		{"employee past threshold", models.DesignationEmployee, at(9, 16, 0), true},
		{"trainer inside grace", models.DesignationTrainer, at(9, 18, 0), false},
		{"trainer past grace", models.DesignationTrainer, at(9, 21, 0), true},
		{"hr on threshold", models.DesignationHR, at(10, 20, 0), false},
		{"admin uses default", models.DesignationAdmin, at(9, 16, 0), true},
		{"only minute matters", models.DesignationEmployee, at(13, 5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLate(tt.d, tt.t))
		})
	}
}

func TestWorkingHours(t *testing.T) {
	h, err := WorkingHours("09:00:00", "17:30:00")
	require.NoError(t, err)
	assert.Equal(t, 8.5, h)

	h, err = WorkingHours("22:00:00", "02:00:00")
	require.NoError(t, err)
	assert.Equal(t, 4.0, h)

	h, err = WorkingHours("22:00:00", "06:00:00")
	require.NoError(t, err)
	assert.Equal(t, 8.0, h)

	h, err = WorkingHours("09:00:00", "09:20:00")
	require.NoError(t, err)
	assert.Equal(t, 0.33, h)

	h, err = WorkingHours("09:00:00", "09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	_, err = WorkingHours("9am", "17:00:00")
	assert.Error(t, err)
}

func TestProjectStatus(t *testing.T) {
	assert.Equal(t, models.StatusAbsent, ProjectStatus(nil))
	assert.Equal(t, models.StatusLate, ProjectStatus(&models.AttendanceRecord{InTime: "09:30:00", OutTime: "18:00:00", Status: models.StatusLate}))
	assert.Equal(t, models.StatusPresent, ProjectStatus(&models.AttendanceRecord{InTime: "09:00:00", OutTime: "18:00:00"}))
	assert.Equal(t, models.StatusMissing, ProjectStatus(&models.AttendanceRecord{InTime: "09:00:00"}))
	assert.Equal(t, models.StatusAbsent, ProjectStatus(&models.AttendanceRecord{}))
}

func TestAggregateStatus(t *testing.T) {
	assert.Equal(t, models.StatusPresent, AggregateStatus([]models.AttendanceStatus{models.StatusMissing, models.StatusPresent}))
	assert.Equal(t, models.StatusMissing, AggregateStatus([]models.AttendanceStatus{models.StatusLate, models.StatusMissing}))
	assert.Equal(t, models.StatusAbsent, AggregateStatus([]models.AttendanceStatus{models.StatusLate}))
	assert.Equal(t, models.StatusAbsent, AggregateStatus(nil))
}
