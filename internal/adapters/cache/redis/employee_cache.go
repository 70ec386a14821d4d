package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/ogurasousui/garage-registry/internal/core/employee"
	"github.com/ogurasousui/garage-registry/internal/platform/txhook"
)

const keyPrefix = "garage-registry:employee:"

// Client は EmployeeCache が利用する go-redis のサブセットです。
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type cachedEmployee struct {
	Address    string    `msgpack:"a"`
	Name       string    `msgpack:"n"`
	Role       int       `msgpack:"r"`
	IsEmployed bool      `msgpack:"e"`
	CreatedAt  time.Time `msgpack:"c"`
	UpdatedAt  time.Time `msgpack:"u"`
}

// EmployeeCache は employee.Repository の単一レコード参照を Redis でキャッシュします。
// 書き込みは下位リポジトリへ委譲した後にキーを削除し、トランザクション内であればコミット後にも再度削除します。
// ロック付き参照、一覧、employee.WithConsistentRead 付きの参照はキャッシュを経由しません。
type EmployeeCache struct {
	next   employee.Repository
	client Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewEmployeeCache は EmployeeCache を生成します。
func NewEmployeeCache(next employee.Repository, client Client, ttl time.Duration, logger *zap.Logger) *EmployeeCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeCache{next: next, client: client, ttl: ttl, logger: logger}
}

// Create は社員を登録し、同じアドレスのキャッシュを破棄します。
func (c *EmployeeCache) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	created, err := c.next.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	c.invalidateAfterCommit(ctx, e.Address)
	return created, nil
}

// Update は社員記録を更新し、キャッシュを破棄します。
func (c *EmployeeCache) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	updated, err := c.next.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	c.invalidateAfterCommit(ctx, e.Address)
	return updated, nil
}

// FindByAddress はキャッシュを優先して社員を返します。
func (c *EmployeeCache) FindByAddress(ctx context.Context, address string) (*employee.Employee, error) {
	if employee.ConsistentReadRequested(ctx) {
		return c.next.FindByAddress(ctx, address)
	}

	key := cacheKey(address)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		cached, decodeErr := decodeEmployee(raw)
		if decodeErr == nil {
			return cached, nil
		}
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(decodeErr))
	case errors.Is(err, goredis.Nil):
	default:
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	found, err := c.next.FindByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	payload, err := encodeEmployee(found)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return found, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}

	return found, nil
}

// FindByAddressForUpdate は常に下位リポジトリを参照します。
func (c *EmployeeCache) FindByAddressForUpdate(ctx context.Context, address string) (*employee.Employee, error) {
	return c.next.FindByAddressForUpdate(ctx, address)
}

// List は常に下位リポジトリを参照します。
func (c *EmployeeCache) List(ctx context.Context) ([]*employee.Employee, error) {
	return c.next.List(ctx)
}

// invalidateAfterCommit はキーを即時に削除し、コミット後にもう一度削除します。
// 未確定の間に並行する参照が古い行を書き戻しても、コミット後の削除で消えます。
func (c *EmployeeCache) invalidateAfterCommit(ctx context.Context, address string) {
	c.invalidate(ctx, address)
	txhook.OnCommit(ctx, func() {
		c.invalidate(context.WithoutCancel(ctx), address)
	})
}

func (c *EmployeeCache) invalidate(ctx context.Context, address string) {
	key := cacheKey(address)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(address string) string {
	return keyPrefix + address
}

func encodeEmployee(e *employee.Employee) ([]byte, error) {
	return msgpack.Marshal(cachedEmployee{
		Address:    e.Address,
		Name:       e.Name,
		Role:       int(e.Role),
		IsEmployed: e.IsEmployed,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	})
}

func decodeEmployee(raw []byte) (*employee.Employee, error) {
	var cached cachedEmployee
	if err := msgpack.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}

	role := employee.Role(cached.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("redis: cached role %d is out of range", cached.Role)
	}

	return &employee.Employee{
		Address:    cached.Address,
		Name:       cached.Name,
		Role:       role,
		IsEmployed: cached.IsEmployed,
		CreatedAt:  cached.CreatedAt.UTC(),
		UpdatedAt:  cached.UpdatedAt.UTC(),
	}, nil
}
