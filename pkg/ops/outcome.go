// Package ops implements the operation handlers: each one validates a
// completed set of fields and performs exactly one record-store mutation or
// read, returning a tagged Outcome. Handlers never prompt and never retry;
// deciding what to ask the user is the dialog engine's job.
package ops

import (
	"hrdesk/pkg/store"
)

// Status tags an Outcome. Every value here is an expected, user-facing
// result. System faults travel as ordinary Go errors and never appear
// as a Status other than StatusFault, which the dialog engine assigns
// at the dispatch boundary.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusExists     Status = "already_exists"
	StatusDuplicate  Status = "duplicate"
	StatusNotFound   Status = "not_found"
	StatusAmbiguous  Status = "ambiguous"
	StatusNotStarted Status = "not_started"
	StatusNotEnded   Status = "not_ended"
	StatusInvalid    Status = "invalid"
	StatusFault      Status = "fault"
)

// Outcome is the tagged result of one operation handler. Message is always
// set; the typed payload fields are populated per operation so Presentation
// can render richer replies than the plain message.
type Outcome struct {
	Status  Status
	Message string

	EmployeeID int64               // register_employee: the new identifier
	Employee   *store.Employee     // find_employee single match, daily_report subject
	Candidates []store.Employee    // find_employee ambiguous matches
	Attendance *store.WorkingHours // attendance_info / assign_working_hours record
	ReportPath string              // daily_report artifact location
	Policy     string              // hr_policy matched text
}

// Ok reports whether the outcome is a success (as opposed to a domain
// rejection or fault).
func (o *Outcome) Ok() bool {
	return o != nil && o.Status == StatusSuccess
}
