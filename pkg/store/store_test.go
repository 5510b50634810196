package store

import (
	"context"
	"database/sql"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	s, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAndLookupEmployee(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddEmployee(ctx, "Alice", "alice@example.com", "IT")
	if err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero id")
	}

	emp, err := s.EmployeeByID(ctx, id)
	if err != nil {
		t.Fatalf("employee by id: %v", err)
	}
	if emp == nil {
		t.Fatal("employee not found after insert")
	}
	if emp.Name != "Alice" || emp.Email != "alice@example.com" || emp.Department != "IT" {
		t.Fatalf("got %+v", emp)
	}

	missing, err := s.EmployeeByID(ctx, id+1000)
	if err != nil {
		t.Fatalf("employee by id: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestEmployeeExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.EmployeeExists(ctx, "nobody@example.com")
	if err != nil || ok {
		t.Fatalf("exists = %v, %v; want false, nil", ok, err)
	}
	if _, err := s.AddEmployee(ctx, "Bob", "bob@example.com", "HR"); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	ok, err = s.EmployeeExists(ctx, "bob@example.com")
	if err != nil || !ok {
		t.Fatalf("exists = %v, %v; want true, nil", ok, err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddEmployee(ctx, "Bob", "bob@example.com", "HR"); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if _, err := s.AddEmployee(ctx, "Bobby", "bob@example.com", "IT"); err == nil {
		t.Fatal("second insert with same email should fail")
	}
}

func TestEmployeesByNameOrderedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, _ := s.AddEmployee(ctx, "Ravi", "ravi1@example.com", "IT")
	second, _ := s.AddEmployee(ctx, "Ravi", "ravi2@example.com", "HR")
	if _, err := s.AddEmployee(ctx, "Other", "other@example.com", "IT"); err != nil {
		t.Fatalf("add employee: %v", err)
	}

	matches, err := s.EmployeesByName(ctx, "Ravi")
	if err != nil {
		t.Fatalf("employees by name: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].ID != first || matches[1].ID != second {
		t.Fatalf("match order = %d, %d; want %d, %d",
			matches[0].ID, matches[1].ID, first, second)
	}
}

func TestWorkingHoursRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.AddEmployee(ctx, "Alice", "alice@example.com", "IT")
	if err := s.AddWorkingHours(ctx, id, "2024-01-01", "09:00", "17:00"); err != nil {
		t.Fatalf("add working hours: %v", err)
	}

	rec, err := s.WorkingHoursFor(ctx, id, "2024-01-01")
	if err != nil {
		t.Fatalf("working hours lookup: %v", err)
	}
	if rec == nil {
		t.Fatal("record not found after insert")
	}
	if rec.StartTime != "09:00" || rec.EndTime != "17:00" {
		t.Fatalf("got %+v", rec)
	}

	none, err := s.WorkingHoursFor(ctx, id, "2024-01-02")
	if err != nil {
		t.Fatalf("working hours lookup: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil for unknown date, got %+v", none)
	}
}

func TestOneWorkingHoursRecordPerEmployeeAndDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.AddEmployee(ctx, "Alice", "alice@example.com", "IT")
	if err := s.AddWorkingHours(ctx, id, "2024-01-01", "09:00", "17:00"); err != nil {
		t.Fatalf("add working hours: %v", err)
	}
	if err := s.AddWorkingHours(ctx, id, "2024-01-01", "10:00", "18:00"); err == nil {
		t.Fatal("second record for the same employee and date should fail")
	}
}
