package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ogurasousui/garage-registry/internal/platform/txhook"
)

// ErrReadOnlyTransaction は読み取り専用トランザクションの内側で書き込みトランザクションを要求した場合に返されます。
var ErrReadOnlyTransaction = errors.New("memory: read-write transaction requested inside read-only transaction")

type txContextKey struct{}

type txMode int

const (
	txReadOnly txMode = iota + 1
	txReadWrite
)

// TransactionManager はプロセス内ストア向けのトランザクション制御です。
// 読み書きトランザクションは他の全トランザクションを排他し、読み取り専用同士は並行に実行されます。
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// WithinReadOnly は共有ロックを取得して fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}
	if inTransaction(ctx) {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(context.WithValue(ctx, txContextKey{}, txReadOnly))
}

// WithinReadWrite は排他ロックを取得して fn を実行します。
// fn が成功した場合、txhook で登録された処理をロック解放後に実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}
	switch modeFromContext(ctx) {
	case txReadWrite:
		return fn(ctx)
	case txReadOnly:
		return ErrReadOnlyTransaction
	}

	txCtx, hooks := txhook.Attach(context.WithValue(ctx, txContextKey{}, txReadWrite))
	if err := m.exclusive(txCtx, fn); err != nil {
		return err
	}
	hooks.Run()
	return nil
}

func (m *TransactionManager) exclusive(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func inTransaction(ctx context.Context) bool {
	return modeFromContext(ctx) != 0
}

func modeFromContext(ctx context.Context) txMode {
	if ctx == nil {
		return 0
	}
	mode, _ := ctx.Value(txContextKey{}).(txMode)
	return mode
}
