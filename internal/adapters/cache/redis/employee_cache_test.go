package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/garage-registry/internal/adapters/repository/memory"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	"github.com/ogurasousui/garage-registry/internal/platform/txhook"
)

type fakeClient struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	deleted []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(string(v), nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return goredis.NewStatusResult("", f.setErr)
	}
	f.data[key] = value.([]byte)
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
		f.deleted = append(f.deleted, k)
	}
	return goredis.NewIntResult(n, nil)
}

type countingRepo struct {
	employee.Repository
	finds int
}

func (r *countingRepo) FindByAddress(ctx context.Context, address string) (*employee.Employee, error) {
	r.finds++
	return r.Repository.FindByAddress(ctx, address)
}

// stagedRepo は Update をコミットまで他の参照から見えなくします。
type stagedRepo struct {
	employee.Repository
	mu      sync.Mutex
	pending []*employee.Employee
}

func (r *stagedRepo) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, e.Clone())
	return e.Clone(), nil
}

func (r *stagedRepo) commit(t *testing.T) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.pending {
		_, err := r.Repository.Update(context.Background(), e)
		require.NoError(t, err)
	}
	r.pending = nil
}

func newCacheFixture(t *testing.T) (*EmployeeCache, *countingRepo, *fakeClient) {
	t.Helper()

	repo := &countingRepo{Repository: memory.NewEmployeeRepository()}
	client := newFakeClient()
	return NewEmployeeCache(repo, client, time.Minute, nil), repo, client
}

func seed(t *testing.T, c *EmployeeCache, address string, role employee.Role) {
	t.Helper()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.Create(context.Background(), &employee.Employee{
		Address:    address,
		Name:       "Cached",
		Role:       role,
		IsEmployed: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
}

func TestEmployeeCache_ReadThrough(t *testing.T) {
	t.Parallel()

	c, repo, client := newCacheFixture(t)
	seed(t, c, "0xA1", employee.RoleTechnicianSupervisor)

	first, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	second, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.finds, "second lookup should be served from cache")
	assert.Equal(t, first.Role, second.Role)
	assert.Equal(t, employee.RoleTechnicianSupervisor, second.Role)
	assert.True(t, second.IsEmployed)
	assert.Equal(t, time.Minute, client.ttls[cacheKey("0xA1")])
}

func TestEmployeeCache_UpdateInvalidates(t *testing.T) {
	t.Parallel()

	c, repo, client := newCacheFixture(t)
	seed(t, c, "0xA1", employee.RoleManager)

	cached, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	require.Contains(t, client.data, cacheKey("0xA1"))

	cached.IsEmployed = false
	_, err = c.Update(context.Background(), cached)
	require.NoError(t, err)
	assert.NotContains(t, client.data, cacheKey("0xA1"))

	fresh, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	assert.False(t, fresh.IsEmployed)
	assert.Equal(t, 2, repo.finds)
}

func TestEmployeeCache_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	c, _, client := newCacheFixture(t)

	_, err := c.FindByAddress(context.Background(), "0xMissing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, client.data)
}

func TestEmployeeCache_FallsBackOnClientErrors(t *testing.T) {
	t.Parallel()

	c, repo, client := newCacheFixture(t)
	seed(t, c, "0xA1", employee.RoleMentor)
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("connection refused")

	found, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleMentor, found.Role)
	assert.Equal(t, 1, repo.finds)
}

func TestEmployeeCache_DiscardsCorruptEntries(t *testing.T) {
	t.Parallel()

	c, repo, client := newCacheFixture(t)
	seed(t, c, "0xA1", employee.RoleKitchenStaff)
	client.data[cacheKey("0xA1")] = []byte("not msgpack")

	found, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleKitchenStaff, found.Role)
	assert.Equal(t, 1, repo.finds)
}

func TestEmployeeCache_ListBypassesCache(t *testing.T) {
	t.Parallel()

	c, _, client := newCacheFixture(t)
	seed(t, c, "A", employee.RoleMediaTeam)
	seed(t, c, "B", employee.RoleMentor)

	all, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Address)
	assert.Empty(t, client.data)
}

func TestDecodeEmployee_RejectsOutOfRangeRole(t *testing.T) {
	t.Parallel()

	raw, err := encodeEmployee(&employee.Employee{Address: "0xA1", Name: "X", Role: employee.Role(42)})
	require.NoError(t, err)

	_, err = decodeEmployee(raw)
	assert.Error(t, err)
}

func TestEmployeeCache_ReadDuringUncommittedWriteIsEvictedOnCommit(t *testing.T) {
	t.Parallel()

	repo := &stagedRepo{Repository: memory.NewEmployeeRepository()}
	client := newFakeClient()
	c := NewEmployeeCache(repo, client, time.Minute, nil)
	seed(t, c, "0xA1", employee.RoleMediaTeam)

	txCtx, hooks := txhook.Attach(context.Background())
	sacked, err := c.FindByAddressForUpdate(txCtx, "0xA1")
	require.NoError(t, err)
	sacked.IsEmployed = false
	_, err = c.Update(txCtx, sacked)
	require.NoError(t, err)

	// 未確定の間の参照は確定済みの古い行を読み、キャッシュへ書き戻す。
	during, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	require.True(t, during.IsEmployed)
	require.Contains(t, client.data, cacheKey("0xA1"))

	repo.commit(t)
	hooks.Run()

	after, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	assert.False(t, after.IsEmployed)
	assert.False(t, employee.CanAccessGarage(after))
}

func TestEmployeeCache_ConsistentReadBypassesCache(t *testing.T) {
	t.Parallel()

	c, repo, client := newCacheFixture(t)
	seed(t, c, "0xA1", employee.RoleMediaTeam)

	_, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	require.Contains(t, client.data, cacheKey("0xA1"))

	// キャッシュを経由せずに退職させ、キャッシュに古い行を残す。
	stored, err := repo.Repository.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	stored.IsEmployed = false
	_, err = repo.Repository.Update(context.Background(), stored)
	require.NoError(t, err)

	svc := employee.NewService(c, nil, memory.NewTransactionManager())
	allowed, err := svc.CanAccessGarage(context.Background(), employee.CanAccessGarageInput{Address: "0xA1"})
	require.NoError(t, err)
	assert.False(t, allowed, "access decision must come from the store")

	cached, err := c.FindByAddress(context.Background(), "0xA1")
	require.NoError(t, err)
	assert.True(t, cached.IsEmployed, "plain lookups are still served from cache")
}
