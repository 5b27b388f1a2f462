package notification

import (
	"context"
	"testing"
	"time"

	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	scope := Scope{RecipientID: "user-1", Role: db.UserRoleUser}

	err := cache.Set(context.Background(), scope, opUnreadCount, "", int64(7), time.Minute)
	require.NoError(t, err)

	var got int64
	ok, err := cache.Get(context.Background(), scope, opUnreadCount, "", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(7), got)

	// Different params are a different entry.
	ok, err = cache.Get(context.Background(), scope, opUnreadCount, "other", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheMissOnUnknownKey(t *testing.T) {
	cache := NewMemoryCache()
	scope := Scope{RecipientID: "user-1", Role: db.UserRoleUser}

	var got int64
	ok, err := cache.Get(context.Background(), scope, opList, "p1:l20:t", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheEntriesExpire(t *testing.T) {
	cache := NewMemoryCache()
	scope := Scope{RecipientID: "user-1", Role: db.UserRoleUser}

	err := cache.Set(context.Background(), scope, opUnreadCount, "", int64(7), 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	var got int64
	ok, err := cache.Get(context.Background(), scope, opUnreadCount, "", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheInvalidateIsScoped(t *testing.T) {
	cache := NewMemoryCache()
	scopeA := Scope{RecipientID: "user-1", Role: db.UserRoleUser}
	scopeB := Scope{RecipientID: "user-1", Role: db.UserRoleProvider}

	require.NoError(t, cache.Set(context.Background(), scopeA, opUnreadCount, "", int64(1), time.Minute))
	require.NoError(t, cache.Set(context.Background(), scopeB, opUnreadCount, "", int64(2), time.Minute))

	require.NoError(t, cache.Invalidate(context.Background(), scopeA))

	var got int64
	ok, err := cache.Get(context.Background(), scopeA, opUnreadCount, "", &got)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = cache.Get(context.Background(), scopeB, opUnreadCount, "", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), got)
}

func TestMemoryCacheInvalidateDropsEntries(t *testing.T) {
	cache := NewMemoryCache()
	scopeA := Scope{RecipientID: "user-1", Role: db.UserRoleUser}
	scopeB := Scope{RecipientID: "user-2", Role: db.UserRoleUser}

	require.NoError(t, cache.Set(context.Background(), scopeA, opUnreadCount, "", int64(1), time.Minute))
	require.NoError(t, cache.Set(context.Background(), scopeA, opList, "p1:l20:t", int64(2), time.Minute))
	require.NoError(t, cache.Set(context.Background(), scopeB, opUnreadCount, "", int64(3), time.Minute))
	require.Len(t, cache.entries, 3)

	// Invalidation frees the scope's entries instead of stranding them
	// behind the bumped version.
	require.NoError(t, cache.Invalidate(context.Background(), scopeA))
	require.Len(t, cache.entries, 1)
	require.Len(t, cache.byScope, 1)

	var got int64
	ok, err := cache.Get(context.Background(), scopeB, opUnreadCount, "", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(3), got)
}

func TestMemoryCacheSweepsExpiredOnSet(t *testing.T) {
	cache := NewMemoryCache()
	scope := Scope{RecipientID: "user-1", Role: db.UserRoleUser}

	require.NoError(t, cache.Set(context.Background(), scope, opUnreadCount, "", int64(1), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	// The next write sweeps the expired entry even though its key is never
	// read again.
	require.NoError(t, cache.Set(context.Background(), scope, opList, "p1:l20:t", int64(2), time.Minute))
	require.Len(t, cache.entries, 1)
}

func TestUnreadCountReadsThroughCache(t *testing.T) {
	svc, store, _, _ := newTestService()
	scope := Scope{RecipientID: "user-1", Role: db.UserRoleUser}
	store.seed(scope, "Booking Confirmed", time.Now().UTC(), false)

	for i := 0; i < 3; i++ {
		count, err := svc.UnreadCount(context.Background(), scope)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	}

	// Only the first read hits the store; the rest are served from cache.
	require.Equal(t, 1, store.unreadCalls)
}
