package employee

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員登録簿のユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は社員登録簿の公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error)
	ToggleEmploymentStatus(ctx context.Context, in ToggleEmploymentStatusInput) (*Employee, error)
	GetEmployeeByAddress(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	GetAllEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployeeRole(ctx context.Context, in UpdateEmployeeRoleInput) (*Employee, error)
	UpdateEmployeeData(ctx context.Context, in UpdateEmployeeDataInput) (*Employee, error)
	UpdateEmployeeName(ctx context.Context, in UpdateEmployeeNameInput) (*Employee, error)
	CanAccessGarage(ctx context.Context, in CanAccessGarageInput) (bool, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// AddEmployeeInput は社員登録時の入力です。
type AddEmployeeInput struct {
	Address string
	Name    string
	Role    Role
}

// ToggleEmploymentStatusInput は在籍状態の切り替え時の入力です。
type ToggleEmploymentStatusInput struct {
	Address string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	Address string
}

// UpdateEmployeeRoleInput は役割更新時の入力です。
type UpdateEmployeeRoleInput struct {
	Address string
	Role    Role
}

// UpdateEmployeeDataInput は役割と名前を同時に更新する際の入力です。
type UpdateEmployeeDataInput struct {
	Address string
	Role    Role
	Name    string
}

// UpdateEmployeeNameInput は名前更新時の入力です。
type UpdateEmployeeNameInput struct {
	Address string
	Name    string
}

// CanAccessGarageInput はガレージ入場判定の入力です。
type CanAccessGarageInput struct {
	Address string
}

// AddEmployee は新しい社員を在籍状態で登録します。
func (s *Service) AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error) {
	address, err := normalizeAddress(in.Address)
	if err != nil {
		return nil, err
	}

	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureAddressNotRegistered(txCtx, address); err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Employee{
			Address:    address,
			Name:       name,
			Role:       in.Role,
			IsEmployed: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// ToggleEmploymentStatus は在籍状態を反転します。2 回呼ぶと元に戻ります。
func (s *Service) ToggleEmploymentStatus(ctx context.Context, in ToggleEmploymentStatusInput) (*Employee, error) {
	return s.mutate(ctx, in.Address, func(e *Employee) {
		e.IsEmployed = !e.IsEmployed
	})
}

// UpdateEmployeeRole は役割のみを置き換えます。
func (s *Service) UpdateEmployeeRole(ctx context.Context, in UpdateEmployeeRoleInput) (*Employee, error) {
	if _, err := normalizeAddress(in.Address); err != nil {
		return nil, err
	}

	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return s.mutate(ctx, in.Address, func(e *Employee) {
		e.Role = in.Role
	})
}

// UpdateEmployeeData は役割と名前を同時に置き換えます。
func (s *Service) UpdateEmployeeData(ctx context.Context, in UpdateEmployeeDataInput) (*Employee, error) {
	if _, err := normalizeAddress(in.Address); err != nil {
		return nil, err
	}

	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	return s.mutate(ctx, in.Address, func(e *Employee) {
		e.Role = in.Role
		e.Name = name
	})
}

// UpdateEmployeeName は名前のみを置き換えます。
func (s *Service) UpdateEmployeeName(ctx context.Context, in UpdateEmployeeNameInput) (*Employee, error) {
	if _, err := normalizeAddress(in.Address); err != nil {
		return nil, err
	}

	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, in.Address, func(e *Employee) {
		e.Name = name
	})
}

// GetEmployeeByAddress は社員を取得します。
func (s *Service) GetEmployeeByAddress(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	address, err := normalizeAddress(in.Address)
	if err != nil {
		return nil, err
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByAddress(txCtx, address)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// GetAllEmployees は在籍・退職を問わず全社員を登録順に返します。
func (s *Service) GetAllEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		employees = found
		return nil
	}); err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []*Employee{}
	}
	return employees, nil
}

// CanAccessGarage はガレージ入場可否を返します。
// 未登録や不正なアドレスは false になり、エラーはストア障害のみです。
// 判定はキャッシュを経由せず、確定済みのストアの状態に基づきます。
func (s *Service) CanAccessGarage(ctx context.Context, in CanAccessGarageInput) (bool, error) {
	address, err := normalizeAddress(in.Address)
	if err != nil {
		return false, nil
	}

	var allowed bool
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByAddress(WithConsistentRead(txCtx), address)
		if err != nil {
			if errors.Is(err, ErrEmployeeNotFound) {
				return nil
			}
			return err
		}
		allowed = CanAccessGarage(found)
		return nil
	}); err != nil {
		return false, err
	}

	return allowed, nil
}

// mutate は既存記録をロックして取得し、apply を適用して保存します。
func (s *Service) mutate(ctx context.Context, rawAddress string, apply func(*Employee)) (*Employee, error) {
	address, err := normalizeAddress(rawAddress)
	if err != nil {
		return nil, err
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByAddressForUpdate(txCtx, address)
		if err != nil {
			return err
		}

		apply(existing)
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) ensureAddressNotRegistered(ctx context.Context, address string) error {
	emp, err := s.repo.FindByAddress(WithConsistentRead(ctx), address)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if emp != nil {
		return ErrEmployeeAlreadyExists
	}
	return nil
}

func normalizeAddress(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidAddress
	}
	return raw, nil
}

// normalizeName は空文字のみを拒否し、与えられた名前をそのまま返します。
func normalizeName(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidName
	}
	return raw, nil
}
