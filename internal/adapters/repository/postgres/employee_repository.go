package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	pgdb "github.com/ogurasousui/garage-registry/internal/platform/db/postgres"
)

const (
	employeeUniqueViolationCode = "23505"
	employeeCheckViolationCode  = "23514"
)

const (
	insertEmployeeQuery = `
        INSERT INTO employees (address, name, role, is_employed, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING address, name, role, is_employed, created_at, updated_at
    `

	updateEmployeeQuery = `
        UPDATE employees
           SET name = $1,
               role = $2,
               is_employed = $3,
               updated_at = $4
         WHERE address = $5
        RETURNING address, name, role, is_employed, created_at, updated_at
    `

	selectEmployeeByAddressQuery = `
        SELECT address, name, role, is_employed, created_at, updated_at
          FROM employees
         WHERE address = $1
    `

	selectEmployeeByAddressForUpdateQuery = `
        SELECT address, name, role, is_employed, created_at, updated_at
          FROM employees
         WHERE address = $1
           FOR UPDATE
    `

	listEmployeesQuery = `
        SELECT address, name, role, is_employed, created_at, updated_at
          FROM employees
         ORDER BY seq ASC
    `
)

// EmployeeRepository は PostgreSQL を利用した社員記録の永続化実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規登録します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, insertEmployeeQuery,
		e.Address,
		e.Name,
		e.Role.String(),
		e.IsEmployed,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員記録を置き換えます。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, updateEmployeeQuery,
		e.Name,
		e.Role.String(),
		e.IsEmployed,
		e.UpdatedAt,
		e.Address,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// FindByAddress はアドレスで社員を取得します。
func (r *EmployeeRepository) FindByAddress(ctx context.Context, address string) (*employee.Employee, error) {
	return r.findOne(ctx, selectEmployeeByAddressQuery, address)
}

// FindByAddressForUpdate は行ロックを取得して社員を取得します。トランザクション内で呼び出してください。
func (r *EmployeeRepository) FindByAddressForUpdate(ctx context.Context, address string) (*employee.Employee, error) {
	return r.findOne(ctx, selectEmployeeByAddressForUpdateQuery, address)
}

// List は登録順に全社員を返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, query, address string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanEmployee(exec.QueryRow(ctx, query, address))
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		address    string
		name       string
		roleName   string
		isEmployed bool
		createdAt  time.Time
		updatedAt  time.Time
	)

	if err := row.Scan(&address, &name, &roleName, &isEmployed, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	role, err := employee.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("postgres: stored role %q: %w", roleName, err)
	}

	return &employee.Employee{
		Address:    address,
		Name:       name,
		Role:       role,
		IsEmployed: isEmployed,
		CreatedAt:  createdAt.UTC(),
		UpdatedAt:  updatedAt.UTC(),
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case employeeUniqueViolationCode:
			return employee.ErrEmployeeAlreadyExists
		case employeeCheckViolationCode:
			switch pgErr.ConstraintName {
			case "employees_name_check":
				return employee.ErrInvalidName
			case "employees_role_check":
				return employee.ErrInvalidRole
			default:
				return employee.ErrInvalidDataPassed
			}
		}
	}

	return err
}
