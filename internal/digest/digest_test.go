package digest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hibiken/asynq"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/worker"
	"github.com/stretchr/testify/require"
)

type scopeStore struct {
	db.Store
	scopes []db.ListScopesWithUnreadRow
	err    error
}

func (s *scopeStore) ListScopesWithUnread(ctx context.Context) ([]db.ListScopesWithUnreadRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scopes, nil
}

type recordDistributor struct {
	mu      sync.Mutex
	digests []worker.PayloadUnreadDigest
	err     error
}

func (d *recordDistributor) DistributeTaskDispatchNotification(ctx context.Context, payload *worker.PayloadDispatchNotification, opts ...asynq.Option) error {
	return nil
}

func (d *recordDistributor) DistributeTaskUnreadDigest(ctx context.Context, payload *worker.PayloadUnreadDigest, opts ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}
	d.digests = append(d.digests, *payload)
	return nil
}

func TestEnqueueDigests(t *testing.T) {
	store := &scopeStore{scopes: []db.ListScopesWithUnreadRow{
		{RecipientID: "user-1", RecipientRole: db.UserRoleUser, UnreadCount: 3},
		{RecipientID: "user-2", RecipientRole: db.UserRoleProvider, UnreadCount: 1},
	}}
	distributor := &recordDistributor{}

	scheduler, err := NewScheduler(store, distributor, "0 9 * * *")
	require.NoError(t, err)
	defer scheduler.Stop()

	scheduler.enqueueDigests()

	require.Len(t, distributor.digests, 2)
	require.Equal(t, "user-1", distributor.digests[0].RecipientID)
	require.Equal(t, int64(3), distributor.digests[0].UnreadCount)
	require.Equal(t, db.UserRoleProvider, distributor.digests[1].RecipientRole)
}

func TestEnqueueDigestsStoreFailure(t *testing.T) {
	store := &scopeStore{err: errors.New("connection refused")}
	distributor := &recordDistributor{}

	scheduler, err := NewScheduler(store, distributor, "0 9 * * *")
	require.NoError(t, err)
	defer scheduler.Stop()

	scheduler.enqueueDigests()
	require.Empty(t, distributor.digests)
}
