package employee

import "context"

type consistentReadKey struct{}

// WithConsistentRead は確定済みのストアの状態を直接読むよう要求する ctx を返します。
// キャッシュ層はこの要求がある参照をキャッシュから返してはいけません。
func WithConsistentRead(ctx context.Context) context.Context {
	return context.WithValue(ctx, consistentReadKey{}, true)
}

// ConsistentReadRequested は ctx が WithConsistentRead で作られたかを返します。
func ConsistentReadRequested(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	requested, _ := ctx.Value(consistentReadKey{}).(bool)
	return requested
}
