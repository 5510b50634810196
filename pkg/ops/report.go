package ops

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hrdesk/pkg/intent"
	"hrdesk/pkg/report"
)

// ReportService turns a completed attendance record into a rendered daily
// report file.
type ReportService struct {
	store    RecordStore
	renderer report.Renderer
}

func NewReportService(store RecordStore, renderer report.Renderer) *ReportService {
	return &ReportService{store: store, renderer: renderer}
}

// Daily renders the work report of one employee for one date. The date
// defaults to today when the user did not give one. A record whose start or
// end time is still empty cannot be reported on; those cases come back as
// StatusNotStarted and StatusNotEnded.
func (s *ReportService) Daily(ctx context.Context, fields map[string]string) (*Outcome, error) {
	id, bad := parseEmployeeID(fields)
	if bad != nil {
		return bad, nil
	}
	date := strings.TrimSpace(fields[intent.FieldDate])
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &Outcome{
			Status:  StatusInvalid,
			Message: "The date must be in YYYY-MM-DD format.",
		}, nil
	}

	emp, err := s.store.EmployeeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee by id: %w", err)
	}
	if emp == nil {
		return &Outcome{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("No employee found with ID %d.", id),
		}, nil
	}

	record, err := s.store.WorkingHoursFor(ctx, id, date)
	if err != nil {
		return nil, fmt.Errorf("working hours lookup: %w", err)
	}
	if record == nil {
		return &Outcome{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("No attendance record found for %s on %s.", emp.Name, date),
		}, nil
	}
	if strings.TrimSpace(record.StartTime) == "" {
		return &Outcome{
			Status:  StatusNotStarted,
			Message: fmt.Sprintf("%s has not started work on %s yet.", emp.Name, date),
		}, nil
	}
	if strings.TrimSpace(record.EndTime) == "" {
		return &Outcome{
			Status:  StatusNotEnded,
			Message: fmt.Sprintf("%s has not ended work on %s yet.", emp.Name, date),
		}, nil
	}

	hours, err := workedHours(record.StartTime, record.EndTime)
	if err != nil {
		return nil, fmt.Errorf("attendance record for employee %d on %s: %w", id, date, err)
	}

	path, err := s.renderer.Render(ctx, report.DailyReport{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		Date:       date,
		StartTime:  record.StartTime,
		EndTime:    record.EndTime,
		Hours:      hours,
	})
	if err != nil {
		return nil, fmt.Errorf("render daily report: %w", err)
	}
	return &Outcome{
		Status:     StatusSuccess,
		Message:    fmt.Sprintf("Daily report for %s on %s generated: %s.", emp.Name, date, path),
		Employee:   emp,
		ReportPath: path,
	}, nil
}

// workedHours computes the shift length in hours, rounded to two decimals.
// A shift crossing midnight has end before start; an extra day is added.
func workedHours(startTime, endTime string) (float64, error) {
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return 0, fmt.Errorf("bad start time %q: %w", startTime, err)
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return 0, fmt.Errorf("bad end time %q: %w", endTime, err)
	}
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*100) / 100, nil
}
