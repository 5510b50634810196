package ops

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hrdesk/pkg/intent"
)

// EmployeeService handles registration and lookup of employee records.
type EmployeeService struct {
	store RecordStore
}

func NewEmployeeService(store RecordStore) *EmployeeService {
	return &EmployeeService{store: store}
}

// Register creates a new employee record. The email is the uniqueness key;
// registering an already known email reports StatusExists rather than
// creating a duplicate. Departments are stored upper-cased.
func (s *EmployeeService) Register(ctx context.Context, fields map[string]string) (*Outcome, error) {
	name := strings.TrimSpace(fields[intent.FieldName])
	email := strings.TrimSpace(fields[intent.FieldEmail])
	department := strings.ToUpper(strings.TrimSpace(fields[intent.FieldDepartment]))

	exists, err := s.store.EmployeeExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check employee email: %w", err)
	}
	if exists {
		return &Outcome{
			Status:  StatusExists,
			Message: fmt.Sprintf("An employee with email %s is already registered.", email),
		}, nil
	}

	id, err := s.store.AddEmployee(ctx, name, email, department)
	if err != nil {
		return nil, fmt.Errorf("add employee: %w", err)
	}
	return &Outcome{
		Status:     StatusSuccess,
		Message:    fmt.Sprintf("Employee %s registered successfully with ID %d.", name, id),
		EmployeeID: id,
	}, nil
}

// Find looks up an employee by ID or by name. An ID is authoritative; a name
// made up entirely of digits is treated as an ID. Multiple name matches come
// back as StatusAmbiguous with the candidate list so the user can pick one.
func (s *EmployeeService) Find(ctx context.Context, fields map[string]string) (*Outcome, error) {
	idText := strings.TrimSpace(fields[intent.FieldEmployeeID])
	name := strings.TrimSpace(fields[intent.FieldName])
	if idText == "" && name != "" && isDigits(name) {
		idText, name = name, ""
	}

	if idText != "" {
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return &Outcome{
				Status:  StatusInvalid,
				Message: "The employee ID must be a number.",
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
		return &Outcome{
			Status:   StatusSuccess,
			Message:  fmt.Sprintf("Found employee %s (ID %d).", emp.Name, emp.ID),
			Employee: emp,
		}, nil
	}

	if name == "" {
		return &Outcome{
			Status:  StatusInvalid,
			Message: "Please provide an employee ID or a name.",
		}, nil
	}

	matches, err := s.store.EmployeesByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("employees by name: %w", err)
	}
	switch len(matches) {
	case 0:
		return &Outcome{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("No employee found with the name %s.", name),
		}, nil
	case 1:
		emp := matches[0]
		return &Outcome{
			Status:   StatusSuccess,
			Message:  fmt.Sprintf("Found employee %s (ID %d).", emp.Name, emp.ID),
			Employee: &emp,
		}, nil
	default:
		return &Outcome{
			Status:     StatusAmbiguous,
			Message:    fmt.Sprintf("There are %d employees named %s. Please specify one by employee ID.", len(matches), name),
			Candidates: matches,
		}, nil
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
