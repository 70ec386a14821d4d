package employee

import "context"

// Repository は社員記録の永続化の抽象です。記録は削除されません。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByAddress(ctx context.Context, address string) (*Employee, error)
	// FindByAddressForUpdate は同一トランザクション内で更新する前提で記録を取得します。
	FindByAddressForUpdate(ctx context.Context, address string) (*Employee, error)
	// List は登録順に全記録を返します。
	List(ctx context.Context) ([]*Employee, error)
}
