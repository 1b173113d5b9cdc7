package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Employee-Attendance-Portal/models"
)

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", got)

	got, err = NormalizeClock("18:30:15")
	require.NoError(t, err)
	assert.Equal(t, "18:30:15", got)

	_, err = NormalizeClock("25:00")
	assert.Error(t, err)
	_, err = NormalizeClock("")
	assert.Error(t, err)
}

func TestDecodeKey(t *testing.T) {
	key, err := GenerateBase64Key(32)
	require.NoError(t, err)

	raw, err := DecodeKey(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	_, err = DecodeKey("c2hvcnQ=")
	assert.Error(t, err)
	_, err = DecodeKey("%%%")
	assert.Error(t, err)

	_, err = GenerateBase64Key(16)
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(models.RegularizationCreatePayload{
		Date:        "2024-03-05",
		RequestType: "Correct In-Time",
		Time:        "09:00",
		Reason:      "",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Reason", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)

	errs = ValidateStruct(models.RegularizationCreatePayload{
		Date:        "2024-03-05",
		RequestType: "Swap Shift",
		Time:        "9am",
		Reason:      "x",
	})
	assert.Len(t, errs, 2)

	assert.Nil(t, ValidateStruct(models.EmployeeCreatePayload{
		EmployeeCode: "emp9",
		Name:         "Ravi",
		Designation:  "trainer",
		Password:     "secret1",
	}))

	errs = ValidateStruct(models.IPConfigUpdatePayload{AllowedIPs: []string{"10.0.0.1", "10.0.0.300"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "ip", errs[0].Tag)
}

func TestExpandHolidays(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Republic Day", Date: "2020-01-26", RRule: "FREQ=YEARLY"},
		{Name: "Founders Day", Date: "2024-07-01"},
		{Name: "Old Event", Date: "2019-05-05"},
		{Name: "Broken", Date: "not-a-date"},
	}

	got, err := ExpandHolidays(holidays, 2024, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []models.HolidayOccurrence{
		{Date: "2024-01-26", Name: "Republic Day"},
		{Date: "2024-07-01", Name: "Founders Day"},
	}, got)

	m := HolidayMap(got)
	assert.Equal(t, "Founders Day", m["2024-07-01"])
}

func TestExpandHolidaysRejectsBadRule(t *testing.T) {
	_, err := ExpandHolidays([]models.Holiday{{Name: "x", Date: "2024-01-01", RRule: "FREQ=SOMETIMES"}}, 2024, time.UTC)
	assert.Error(t, err)
}
