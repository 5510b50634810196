package ops

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hrdesk/pkg/intent"
	"hrdesk/pkg/store"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// AttendanceService records and reads back daily working hours.
type AttendanceService struct {
	store RecordStore
}

func NewAttendanceService(store RecordStore) *AttendanceService {
	return &AttendanceService{store: store}
}

// Assign stores the working hours of one employee for one date. At most one
// record may exist per employee and date; a second assignment for the same
// pair reports StatusDuplicate.
func (s *AttendanceService) Assign(ctx context.Context, fields map[string]string) (*Outcome, error) {
	id, bad := parseEmployeeID(fields)
	if bad != nil {
		return bad, nil
	}
	date := strings.TrimSpace(fields[intent.FieldDate])
	start := strings.TrimSpace(fields[intent.FieldStartTime])
	end := strings.TrimSpace(fields[intent.FieldEndTime])

	if _, err := time.Parse(dateLayout, date); err != nil {
		return &Outcome{
			Status:  StatusInvalid,
			Message: "The date must be in YYYY-MM-DD format.",
		}, nil
	}
	for _, clock := range []string{start, end} {
		if _, err := time.Parse(timeLayout, clock); err != nil {
			return &Outcome{
				Status:  StatusInvalid,
				Message: "Times must be in HH:MM format, for example 09:00.",
			}, nil
		}
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

	existing, err := s.store.WorkingHoursFor(ctx, id, date)
	if err != nil {
		return nil, fmt.Errorf("working hours lookup: %w", err)
	}
	if existing != nil {
		return &Outcome{
			Status:  StatusDuplicate,
			Message: fmt.Sprintf("Working hours for %s are already assigned to employee %d.", date, id),
		}, nil
	}

	if err := s.store.AddWorkingHours(ctx, id, date, start, end); err != nil {
		return nil, fmt.Errorf("add working hours: %w", err)
	}
	return &Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Working hours assigned to %s for %s: %s to %s.", emp.Name, date, start, end),
		Attendance: &store.WorkingHours{
			EmployeeID: id,
			Date:       date,
			StartTime:  start,
			EndTime:    end,
		},
	}, nil
}

// Info reads back the attendance record of one employee for one date.
func (s *AttendanceService) Info(ctx context.Context, fields map[string]string) (*Outcome, error) {
	id, bad := parseEmployeeID(fields)
	if bad != nil {
		return bad, nil
	}
	date := strings.TrimSpace(fields[intent.FieldDate])
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
	return &Outcome{
		Status:     StatusSuccess,
		Message:    fmt.Sprintf("%s worked from %s to %s on %s.", emp.Name, record.StartTime, record.EndTime, record.Date),
		Employee:   emp,
		Attendance: record,
	}, nil
}

// parseEmployeeID pulls the employee_id field out of the completed set. The
// second return is a ready-made StatusInvalid outcome when the value is not a
// number.
func parseEmployeeID(fields map[string]string) (int64, *Outcome) {
	id, err := strconv.ParseInt(strings.TrimSpace(fields[intent.FieldEmployeeID]), 10, 64)
	if err != nil {
		return 0, &Outcome{
			Status:  StatusInvalid,
			Message: "The employee ID must be a number.",
		}
	}
	return id, nil
}
