package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one record per employee per calendar day. Clock and hour
// fields are nullable: absence, leave, holiday and weekend rows carry a
// status but no times.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	ClockIn       *time.Time
	ClockOut      *time.Time
	BreakStart    *time.Time
	BreakEnd      *time.Time
	TotalHours    *decimal.Decimal
	RegularHours  *decimal.Decimal
	OvertimeHours *decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
	StatusHoliday Status = "HOLIDAY"
	StatusWeekend Status = "WEEKEND"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent,
		StatusOnLeave, StatusHoliday, StatusWeekend:
		return true
	}
	return false
}

// Worked reports whether the day counts toward payroll work days.
func (s Status) Worked() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// PeriodSummary is the attendance roll-up the payroll calculator consumes.
type PeriodSummary struct {
	WorkDays      int
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}
