// Package txhook はトランザクション確定後に実行する処理を context 経由で登録する仕組みを提供します。
package txhook

import (
	"context"
	"sync"
)

type contextKey struct{}

// Hooks は確定後に実行する関数を登録順に保持します。
type Hooks struct {
	mu  sync.Mutex
	fns []func()
}

// Attach は新しい Hooks を ctx に結び付けます。
// トランザクション管理側が最も外側のトランザクション開始時に呼び出します。
func Attach(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, contextKey{}, h), h
}

// OnCommit は ctx のトランザクションが確定した後に fn を実行するよう登録します。
// ctx がトランザクションに属していない場合は何もせず false を返します。
func OnCommit(ctx context.Context, fn func()) bool {
	if ctx == nil || fn == nil {
		return false
	}
	h, ok := ctx.Value(contextKey{}).(*Hooks)
	if !ok || h == nil {
		return false
	}

	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
	return true
}

// Run は登録済みの関数を登録順に実行します。実行した関数は破棄されます。
func (h *Hooks) Run() {
	if h == nil {
		return
	}

	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
