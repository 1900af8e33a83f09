package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettingsRepo serves the stored policy without a database. With no
// settings saved it reports not-found, which falls back to the defaults.
type stubSettingsRepo struct {
	settings *payroll.Settings
}

func (s *stubSettingsRepo) Get(ctx context.Context) (payroll.Settings, error) {
	if s.settings == nil {
		return payroll.Settings{}, payroll.ErrSettingsNotFound
	}
	return *s.settings, nil
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	s.settings = &settings
	return settings, nil
}

func newTestService(settingsRepo payroll.SettingsRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{settingsRepo: settingsRepo}
}

func ts(hour, minute int) *time.Time {
	t := time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestComputeHours_RegularDay(t *testing.T) {
	svc := newTestService(&stubSettingsRepo{})
	record := attendance.Attendance{
		Status:   attendance.StatusPresent,
		ClockIn:  ts(9, 0),
		ClockOut: ts(17, 0),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	require.NotNil(t, record.TotalHours)
	assert.True(t, record.TotalHours.Equal(decimal.NewFromInt(8)), "got %s", record.TotalHours)
	assert.True(t, record.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, record.OvertimeHours.IsZero())
}

func TestComputeHours_OvertimeSplit(t *testing.T) {
	svc := newTestService(&stubSettingsRepo{})
	record := attendance.Attendance{
		Status:   attendance.StatusPresent,
		ClockIn:  ts(8, 0),
		ClockOut: ts(19, 30),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	// 11.5 worked hours against an 8 hour standard day.
	assert.True(t, record.TotalHours.Equal(decimal.RequireFromString("11.5")))
	assert.True(t, record.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, record.OvertimeHours.Equal(decimal.RequireFromString("3.5")), "got %s", record.OvertimeHours)
}

func TestComputeHours_BreakSubtracted(t *testing.T) {
	svc := newTestService(&stubSettingsRepo{})
	record := attendance.Attendance{
		Status:     attendance.StatusPresent,
		ClockIn:    ts(9, 0),
		ClockOut:   ts(18, 0),
		BreakStart: ts(12, 0),
		BreakEnd:   ts(13, 0),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	assert.True(t, record.TotalHours.Equal(decimal.NewFromInt(8)), "got %s", record.TotalHours)
	assert.True(t, record.OvertimeHours.IsZero())
}

func TestComputeHours_MissingClocksLeaveHoursNil(t *testing.T) {
	svc := newTestService(&stubSettingsRepo{})
	record := attendance.Attendance{
		Status:  attendance.StatusPresent,
		ClockIn: ts(9, 0),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	assert.Nil(t, record.TotalHours)
	assert.Nil(t, record.RegularHours)
	assert.Nil(t, record.OvertimeHours)
}

func TestComputeHours_ClockOutBeforeClockInClampsToZero(t *testing.T) {
	svc := newTestService(&stubSettingsRepo{})
	record := attendance.Attendance{
		Status:   attendance.StatusPresent,
		ClockIn:  ts(17, 0),
		ClockOut: ts(9, 0),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	require.NotNil(t, record.TotalHours)
	assert.True(t, record.TotalHours.IsZero())
}

func TestComputeHours_UsesStoredStandardDay(t *testing.T) {
	stored := payroll.DefaultPolicy()
	settings := payroll.Settings{
		SSSRate:              stored.SSSRate,
		SSSCap:               stored.SSSCap,
		PhilHealthRate:       stored.PhilHealthRate,
		PhilHealthCap:        stored.PhilHealthCap,
		PagIbigRate:          stored.PagIbigRate,
		PagIbigCap:           stored.PagIbigCap,
		OvertimeMultiplier:   stored.OvertimeMultiplier,
		StandardMonthlyHours: stored.StandardMonthlyHours,
		StandardDailyHours:   decimal.NewFromInt(6),
		TaxBrackets:          stored.TaxBrackets,
	}
	svc := newTestService(&stubSettingsRepo{settings: &settings})

	record := attendance.Attendance{
		Status:   attendance.StatusPresent,
		ClockIn:  ts(9, 0),
		ClockOut: ts(17, 0),
	}

	require.NoError(t, svc.computeHours(context.Background(), &record))

	assert.True(t, record.RegularHours.Equal(decimal.NewFromInt(6)))
	assert.True(t, record.OvertimeHours.Equal(decimal.NewFromInt(2)), "got %s", record.OvertimeHours)
}
