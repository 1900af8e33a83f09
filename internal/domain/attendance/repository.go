package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, record Attendance) error
	Delete(ctx context.Context, id string) error

	// GetByEmployeePeriod returns all rows for one employee inside
	// [periodStart, periodEnd], both bounds inclusive.
	GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Attendance, error)
}
