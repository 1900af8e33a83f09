package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingsRepo   payroll.SettingsRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo payroll.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
	}
}

func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		ClockIn:    parseTimestamp(req.ClockIn),
		ClockOut:   parseTimestamp(req.ClockOut),
		BreakStart: parseTimestamp(req.BreakStart),
		BreakEnd:   parseTimestamp(req.BreakEnd),
		Notes:      req.Notes,
	}

	if err := s.computeHours(ctx, &record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(record), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}

	records, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		data = append(data, toAttendanceResponse(r))
	}

	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.ClockIn != nil {
		record.ClockIn = parseTimestamp(req.ClockIn)
	}
	if req.ClockOut != nil {
		record.ClockOut = parseTimestamp(req.ClockOut)
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.computeHours(ctx, &record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(updated), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// computeHours derives total, regular and overtime hours from the clock
// fields. The regular/overtime split happens here, at write time, against the
// configured standard day; the payroll aggregator only sums the stored split.
func (s *AttendanceServiceImpl) computeHours(ctx context.Context, record *attendance.Attendance) error {
	if record.ClockIn == nil || record.ClockOut == nil {
		record.TotalHours = nil
		record.RegularHours = nil
		record.OvertimeHours = nil
		return nil
	}

	policy, err := s.loadPolicy(ctx)
	if err != nil {
		return err
	}

	worked := record.ClockOut.Sub(*record.ClockIn)
	if record.BreakStart != nil && record.BreakEnd != nil && record.BreakEnd.After(*record.BreakStart) {
		worked -= record.BreakEnd.Sub(*record.BreakStart)
	}
	if worked < 0 {
		worked = 0
	}

	total := decimal.NewFromFloat(worked.Hours()).Round(2)
	regular := total
	overtime := decimal.Zero
	if total.GreaterThan(policy.StandardDailyHours) {
		regular = policy.StandardDailyHours
		overtime = total.Sub(policy.StandardDailyHours)
	}

	record.TotalHours = &total
	record.RegularHours = &regular
	record.OvertimeHours = &overtime
	return nil
}

func (s *AttendanceServiceImpl) loadPolicy(ctx context.Context) (payroll.Policy, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.DefaultPolicy(), nil
		}
		return payroll.Policy{}, err
	}
	return stored.Policy(), nil
}

func parseTimestamp(v *string) *time.Time {
	if v == nil {
		return nil
	}
	if t, ok := validator.IsValidDateTime(*v); ok {
		return &t
	}
	return nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.Format(time.DateOnly),
		Status:        string(a.Status),
		TotalHours:    a.TotalHours,
		RegularHours:  a.RegularHours,
		OvertimeHours: a.OvertimeHours,
		Notes:         a.Notes,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
