package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/garage-registry/internal/core/employee"
)

// EmployeeRepository はプロセス内に社員記録を保持する実装です。記録は登録順の索引と共に保持されます。
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]*employee.Employee
	order     []string
}

// NewEmployeeRepository は空の EmployeeRepository を生成します。
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]*employee.Employee)}
}

// Create は社員を追加します。
func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[e.Address]; ok {
		return nil, employee.ErrEmployeeAlreadyExists
	}
	r.employees[e.Address] = e.Clone()
	r.order = append(r.order, e.Address)
	return e.Clone(), nil
}

// Update は既存の社員記録を置き換えます。
func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[e.Address]; !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	r.employees[e.Address] = e.Clone()
	return e.Clone(), nil
}

// FindByAddress はアドレスで社員を取得します。
func (r *EmployeeRepository) FindByAddress(_ context.Context, address string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found, ok := r.employees[address]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return found.Clone(), nil
}

// FindByAddressForUpdate は FindByAddress と同じです。書き込みの直列化は TransactionManager が担います。
func (r *EmployeeRepository) FindByAddressForUpdate(ctx context.Context, address string) (*employee.Employee, error) {
	return r.FindByAddress(ctx, address)
}

// List は登録順に全社員を返します。
func (r *EmployeeRepository) List(_ context.Context) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]*employee.Employee, 0, len(r.order))
	for _, address := range r.order {
		employees = append(employees, r.employees[address].Clone())
	}
	return employees, nil
}
