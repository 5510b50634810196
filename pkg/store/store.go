// Package store persists HR records: employees and per-(employee, date)
// working-hours entries. It is the only durable state in the system;
// conversation state never lands here.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Employee is one registered employee row.
type Employee struct {
	ID         int64  `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// WorkingHours is the assigned working-hours record for one employee on one
// date. StartTime/EndTime are "HH:MM" strings and may be empty if the row
// was seeded half-filled outside the assign flow.
type WorkingHours struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// Store manages HR record persistence.
type Store struct {
	db *sql.DB
}

// Open creates a record store backed by the sqlite file at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewWithDB creates a record store using an existing database connection.
func NewWithDB(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS employees (
			employee_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			department TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS working_hours (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			UNIQUE(employee_id, date),
			FOREIGN KEY (employee_id) REFERENCES employees(employee_id)
		);

		CREATE INDEX IF NOT EXISTS idx_employees_name ON employees(name);
		CREATE INDEX IF NOT EXISTS idx_working_hours_date ON working_hours(date);
	`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddEmployee inserts a new employee and returns the generated identifier.
func (s *Store) AddEmployee(ctx context.Context, name, email, department string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (name, email, department) VALUES (?, ?, ?)
	`, name, email, department)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("employee id: %w", err)
	}
	return id, nil
}

// EmployeeExists reports whether an employee with the given email is already
// registered. Email is the registration uniqueness key.
func (s *Store) EmployeeExists(ctx context.Context, email string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM employees WHERE email = ?
	`, email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("employee exists: %w", err)
	}
	return true, nil
}

// EmployeeByID fetches one employee by identifier. Returns (nil, nil) when
// no such employee exists.
func (s *Store) EmployeeByID(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := s.db.QueryRowContext(ctx, `
		SELECT employee_id, name, email, department
		FROM employees WHERE employee_id = ?
	`, id).Scan(&e.ID, &e.Name, &e.Email, &e.Department)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("employee by id: %w", err)
	}
	return &e, nil
}

// EmployeesByName fetches all employees with the given name. Name is not
// unique; callers decide what multiple matches mean.
func (s *Store) EmployeesByName(ctx context.Context, name string) ([]Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, name, email, department
		FROM employees WHERE name = ?
		ORDER BY employee_id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("employees by name: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// AddWorkingHours inserts the working-hours record for (employeeID, date).
// The UNIQUE constraint backs up the handler-level duplicate check; a
// constraint violation surfaces as an error, never a silent overwrite.
func (s *Store) AddWorkingHours(ctx context.Context, employeeID int64, date, startTime, endTime string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO working_hours (employee_id, date, start_time, end_time)
		VALUES (?, ?, ?, ?)
	`, employeeID, date, startTime, endTime)
	if err != nil {
		return fmt.Errorf("insert working hours: %w", err)
	}
	return nil
}

// WorkingHoursFor fetches the working-hours record for one employee on one
// date. Returns (nil, nil) when no record exists.
func (s *Store) WorkingHoursFor(ctx context.Context, employeeID int64, date string) (*WorkingHours, error) {
	var (
		w          WorkingHours
		start, end sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT employee_id, date, start_time, end_time
		FROM working_hours WHERE employee_id = ? AND date = ?
	`, employeeID, date).Scan(&w.EmployeeID, &w.Date, &start, &end)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("working hours: %w", err)
	}
	w.StartTime = start.String
	w.EndTime = end.String
	return &w, nil
}
