package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var employeeColumns = []string{"address", "name", "role", "is_employed", "created_at", "updated_at"}

type stubEmployeeRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubEmployeeRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanEmployee_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubEmployeeRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 6 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "0xA1"
		*(dest[1].(*string)) = "Test Employee"
		*(dest[2].(*string)) = "MANAGER"
		*(dest[3].(*bool)) = true
		*(dest[4].(*time.Time)) = createdAt
		*(dest[5].(*time.Time)) = updatedAt
		return nil
	}}

	emp, err := scanEmployee(row)
	if err != nil {
		t.Fatalf("scanEmployee returned error: %v", err)
	}

	if emp.Address != "0xA1" || emp.Name != "Test Employee" {
		t.Fatalf("unexpected identity fields: %+v", emp)
	}
	if emp.Role != employee.RoleManager {
		t.Fatalf("expected MANAGER, got %s", emp.Role)
	}
	if !emp.IsEmployed {
		t.Fatalf("expected employed")
	}
	if !emp.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected updated_at: %v", emp.UpdatedAt)
	}
}

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubEmployeeRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestScanEmployee_UnknownStoredRole(t *testing.T) {
	t.Parallel()

	row := stubEmployeeRow{scanFn: func(dest ...interface{}) error {
		*(dest[0].(*string)) = "0xA1"
		*(dest[1].(*string)) = "Name"
		*(dest[2].(*string)) = "JANITOR"
		return nil
	}}

	if _, err := scanEmployee(row); err == nil {
		t.Fatalf("expected error for unknown stored role")
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: employee.ErrEmployeeNotFound},
		{name: "unique", err: &pgconn.PgError{Code: employeeUniqueViolationCode}, want: employee.ErrEmployeeAlreadyExists},
		{name: "name check", err: &pgconn.PgError{Code: employeeCheckViolationCode, ConstraintName: "employees_name_check"}, want: employee.ErrInvalidName},
		{name: "role check", err: &pgconn.PgError{Code: employeeCheckViolationCode, ConstraintName: "employees_role_check"}, want: employee.ErrInvalidRole},
		{name: "other check", err: &pgconn.PgError{Code: employeeCheckViolationCode}, want: employee.ErrInvalidDataPassed},
	}

	for _, tt := range tests {
		if got := translateEmployeePgError(tt.err); !errors.Is(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	other := errors.New("other")
	if translateEmployeePgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs("0xA1", "Media", "MEDIA_TEAM", true, now, now).
		WillReturnRows(pgxmock.NewRows(employeeColumns).AddRow("0xA1", "Media", "MEDIA_TEAM", true, now, now))

	created, err := repo.Create(context.Background(), &employee.Employee{
		Address:    "0xA1",
		Name:       "Media",
		Role:       employee.RoleMediaTeam,
		IsEmployed: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Role != employee.RoleMediaTeam || !created.IsEmployed {
		t.Fatalf("unexpected created record: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs("0xA1", "Media", "MEDIA_TEAM", true, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: employeeUniqueViolationCode})

	_, err = repo.Create(context.Background(), &employee.Employee{Address: "0xA1", Name: "Media", Role: employee.RoleMediaTeam, IsEmployed: true})
	if !errors.Is(err, employee.ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs("Name", "MENTOR", false, now, "0xMissing").
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	_, err = repo.Update(context.Background(), &employee.Employee{
		Address:   "0xMissing",
		Name:      "Name",
		Role:      employee.RoleMentor,
		UpdatedAt: now,
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_FindByAddressForUpdate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectEmployeeByAddressForUpdateQuery)).
		WithArgs("0xA1").
		WillReturnRows(pgxmock.NewRows(employeeColumns).AddRow("0xA1", "Kitchen", "KITCHEN_STAFF", false, now, now))

	found, err := repo.FindByAddressForUpdate(context.Background(), "0xA1")
	if err != nil {
		t.Fatalf("FindByAddressForUpdate returned error: %v", err)
	}
	if found.Role != employee.RoleKitchenStaff || found.IsEmployed {
		t.Fatalf("unexpected record: %+v", found)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_List_InsertionOrder(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(employeeColumns).
		AddRow("A", "Media", "MEDIA_TEAM", true, now, now).
		AddRow("B", "Social", "SOCIAL_MEDIA_TEAM", false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(rows)

	employees, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].Address != "A" || employees[1].Address != "B" {
		t.Fatalf("expected order [A B], got [%s %s]", employees[0].Address, employees[1].Address)
	}
	if employees[1].IsEmployed {
		t.Fatalf("expected sacked record to be listed as sacked")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_List_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(pgxmock.NewRows(employeeColumns))

	employees, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if employees == nil || len(employees) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", employees)
	}
}
