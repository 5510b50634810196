package ops

import (
	"context"

	"hrdesk/pkg/policy"
	"hrdesk/pkg/store"
)

// RecordStore is the persistence surface the handlers consume. *store.Store
// satisfies it; tests may substitute anything else that does.
type RecordStore interface {
	AddEmployee(ctx context.Context, name, email, department string) (int64, error)
	EmployeeExists(ctx context.Context, email string) (bool, error)
	EmployeeByID(ctx context.Context, id int64) (*store.Employee, error)
	EmployeesByName(ctx context.Context, name string) ([]store.Employee, error)
	AddWorkingHours(ctx context.Context, employeeID int64, date, startTime, endTime string) error
	WorkingHoursFor(ctx context.Context, employeeID int64, date string) (*store.WorkingHours, error)
}

// PolicySearcher matches the lookup side of *policy.Store.
type PolicySearcher interface {
	Search(query string) (policy.Policy, bool)
}
