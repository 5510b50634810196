// Package intent turns one raw utterance into a best-effort structured guess:
// an operation name plus zero or more extracted field values. Guesses are
// advisory; the dialog engine tolerates them being wrong, partial, or absent.
package intent

// Operation names. These are the fixed vocabulary shared between the
// classifier providers and the operation descriptor table.
const (
	OpUnknown            = "unknown"
	OpGreeting           = "greeting"
	OpHelp               = "help"
	OpRegisterEmployee   = "register_employee"
	OpFindEmployee       = "find_employee"
	OpAssignWorkingHours = "assign_working_hours"
	OpAttendanceInfo     = "attendance_info"
	OpDailyReport        = "daily_report"
	OpHRPolicy           = "hr_policy"
)

// Field names extracted by classifiers.
const (
	FieldEmployeeID = "employee_id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldDate       = "date"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldQuery      = "query"
)

// operationFields lists, per operation, the only fields a guess may carry.
// Anything else a model invents is dropped at construction.
var operationFields = map[string][]string{
	OpGreeting:           {},
	OpHelp:               {},
	OpRegisterEmployee:   {FieldName, FieldEmail, FieldDepartment},
	OpFindEmployee:       {FieldEmployeeID, FieldName},
	OpAssignWorkingHours: {FieldEmployeeID, FieldDate, FieldStartTime, FieldEndTime},
	OpAttendanceInfo:     {FieldEmployeeID, FieldDate},
	OpDailyReport:        {FieldEmployeeID, FieldDate},
	OpHRPolicy:           {FieldQuery},
}

// KnownOperation reports whether name is a resolvable operation.
func KnownOperation(name string) bool {
	_, ok := operationFields[name]
	return ok
}

// AllowedFields returns the field vocabulary of an operation.
func AllowedFields(op string) []string {
	return operationFields[op]
}

// Intent is a classifier guess: one operation tag plus the field values the
// classifier managed to lift from the utterance. Fields only ever contains
// non-empty values for fields the operation actually defines.
type Intent struct {
	Operation string
	Fields    map[string]string
}

// New constructs an Intent for op, keeping only non-empty values of fields
// that belong to the operation. An unresolvable op yields the unknown
// sentinel regardless of fields.
func New(op string, fields map[string]string) Intent {
	if !KnownOperation(op) {
		return Unknown()
	}

	kept := make(map[string]string)
	for _, f := range operationFields[op] {
		if v, ok := fields[f]; ok && v != "" {
			kept[f] = v
		}
	}
	return Intent{Operation: op, Fields: kept}
}

// Unknown returns the sentinel guess meaning "could not classify".
func Unknown() Intent {
	return Intent{Operation: OpUnknown, Fields: map[string]string{}}
}

// IsUnknown reports whether the guess carries no resolvable operation.
func (i Intent) IsUnknown() bool {
	return i.Operation == "" || i.Operation == OpUnknown
}
