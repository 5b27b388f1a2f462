package notification

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
)

// memStore is an in-memory db.Store covering the notification queries.
type memStore struct {
	mu          sync.Mutex
	rows        []db.Notification
	createErr   error
	unreadCalls int
}

func newMemStore() *memStore {
	return &memStore{}
}

// seed inserts a row directly, bypassing the dispatch path. Tests must seed
// before priming any cache.
func (m *memStore) seed(scope Scope, title string, createdAt time.Time, isRead bool) db.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := db.Notification{
		ID:            uuid.New(),
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		Title:         title,
		Message:       "message for " + title,
		IsRead:        isRead,
		CreatedAt:     createdAt,
	}
	m.rows = append(m.rows, row)
	return row
}

func (m *memStore) CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return db.Notification{}, m.createErr
	}

	row := db.Notification{
		ID:            uuid.New(),
		RecipientID:   arg.RecipientID,
		RecipientRole: arg.RecipientRole,
		Title:         arg.Title,
		Message:       arg.Message,
		IsRead:        false,
		CreatedAt:     time.Now().UTC(),
	}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memStore) ListNotifications(ctx context.Context, arg db.ListNotificationsParams) ([]db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.match(arg.RecipientID, arg.RecipientRole, arg.TitleFilter, nil, nil, nil, time.Time{})
	return page(matched, arg.Limit, arg.Offset), nil
}

func (m *memStore) CountNotifications(ctx context.Context, arg db.CountNotificationsParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.match(arg.RecipientID, arg.RecipientRole, arg.TitleFilter, nil, nil, nil, time.Time{}))), nil
}

func (m *memStore) CountUnreadNotifications(ctx context.Context, arg db.CountUnreadNotificationsParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unreadCalls++
	unread := false
	return int64(len(m.match(arg.RecipientID, arg.RecipientRole, nil, nil, nil, &unread, time.Time{}))), nil
}

func (m *memStore) ListNotificationsSince(ctx context.Context, arg db.ListNotificationsSinceParams) ([]db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.match(arg.RecipientID, arg.RecipientRole, nil, nil, nil, nil, arg.CreatedAt)
	return page(matched, arg.Limit, 0), nil
}

func (m *memStore) ListNotificationHistory(ctx context.Context, arg db.ListNotificationHistoryParams) ([]db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.match(arg.RecipientID, arg.RecipientRole, arg.TitleFilter, arg.DateFrom, arg.DateTo, arg.IsRead, time.Time{})
	return page(matched, arg.Limit, arg.Offset), nil
}

func (m *memStore) CountNotificationHistory(ctx context.Context, arg db.CountNotificationHistoryParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.match(arg.RecipientID, arg.RecipientRole, arg.TitleFilter, arg.DateFrom, arg.DateTo, arg.IsRead, time.Time{}))), nil
}

func (m *memStore) GetNotificationHistoryStats(ctx context.Context, arg db.GetNotificationHistoryStatsParams) (db.GetNotificationHistoryStatsRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats db.GetNotificationHistoryStatsRow
	for _, row := range m.match(arg.RecipientID, arg.RecipientRole, nil, arg.DateFrom, arg.DateTo, arg.IsRead, time.Time{}) {
		title := strings.ToLower(row.Title)
		switch {
		case strings.Contains(title, "booking"):
			stats.BookingCount++
		case strings.Contains(title, "rating"):
			stats.RatingCount++
		case strings.Contains(title, "report"):
			stats.ReportCount++
		default:
			stats.SystemCount++
		}
	}
	return stats, nil
}

func (m *memStore) MarkNotificationAsRead(ctx context.Context, arg db.MarkNotificationAsReadParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var affected int64
	for i := range m.rows {
		row := &m.rows[i]
		if row.ID == arg.ID && row.RecipientID == arg.RecipientID && row.RecipientRole == arg.RecipientRole && !row.IsRead {
			row.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (m *memStore) MarkAllNotificationsAsRead(ctx context.Context, arg db.MarkAllNotificationsAsReadParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var affected int64
	for i := range m.rows {
		row := &m.rows[i]
		if row.RecipientID == arg.RecipientID && row.RecipientRole == arg.RecipientRole && !row.IsRead {
			row.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (m *memStore) ListScopesWithUnread(ctx context.Context) ([]db.ListScopesWithUnreadRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[Scope]int64)
	for _, row := range m.rows {
		if !row.IsRead {
			counts[Scope{RecipientID: row.RecipientID, Role: row.RecipientRole}]++
		}
	}

	scopes := make([]db.ListScopesWithUnreadRow, 0, len(counts))
	for scope, count := range counts {
		scopes = append(scopes, db.ListScopesWithUnreadRow{
			RecipientID:   scope.RecipientID,
			RecipientRole: scope.Role,
			UnreadCount:   count,
		})
	}
	sort.Slice(scopes, func(i, j int) bool {
		if scopes[i].RecipientID != scopes[j].RecipientID {
			return scopes[i].RecipientID < scopes[j].RecipientID
		}
		return scopes[i].RecipientRole < scopes[j].RecipientRole
	})
	return scopes, nil
}

// match filters and orders rows the way the real queries do: created_at
// descending, id descending on ties.
func (m *memStore) match(recipientID string, role db.UserRole, titleFilter *string, dateFrom, dateTo *time.Time, isRead *bool, after time.Time) []db.Notification {
	var matched []db.Notification
	for _, row := range m.rows {
		if row.RecipientID != recipientID || row.RecipientRole != role {
			continue
		}
		if titleFilter != nil {
			// The queries receive the filter LIKE-escaped; decode it back
			// to the literal substring the caller asked for.
			literal := strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(*titleFilter)
			if !strings.Contains(strings.ToLower(row.Title), strings.ToLower(literal)) {
				continue
			}
		}
		if dateFrom != nil && row.CreatedAt.Before(*dateFrom) {
			continue
		}
		if dateTo != nil && row.CreatedAt.After(*dateTo) {
			continue
		}
		if isRead != nil && row.IsRead != *isRead {
			continue
		}
		if !after.IsZero() && !row.CreatedAt.After(after) {
			continue
		}
		matched = append(matched, row)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) > 0
	})
	return matched
}

func page(rows []db.Notification, limit, offset int32) []db.Notification {
	if int(offset) >= len(rows) {
		return []db.Notification{}
	}
	rows = rows[offset:]
	if int(limit) < len(rows) {
		rows = rows[:limit]
	}
	return append([]db.Notification{}, rows...)
}

type pushCall struct {
	recipientID string
	role        db.UserRole
	title       string
	message     string
}

type fakePush struct {
	mu    sync.Mutex
	err   error
	delay time.Duration // ignores ctx, like a stuck transport
	calls []pushCall
}

func (p *fakePush) Send(ctx context.Context, recipientID string, role db.UserRole, title string, message string) error {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, pushCall{recipientID: recipientID, role: role, title: title, message: message})
	return p.err
}

func (p *fakePush) sendCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type fakeEvents struct {
	mu           sync.Mutex
	broadcastErr error
	events       []event.Event
}

func (f *fakeEvents) Register(topic string, client chan event.Event)   {}
func (f *fakeEvents) Unregister(topic string, client chan event.Event) {}
func (f *fakeEvents) Run()                                             {}

func (f *fakeEvents) Broadcast(ev event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.broadcastErr != nil {
		return f.broadcastErr
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeEvents) eventCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func (f *fakeEvents) lastEvent() event.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[len(f.events)-1]
}

func newTestService() (*Service, *memStore, *fakePush, *fakeEvents) {
	store := newMemStore()
	push := &fakePush{}
	events := &fakeEvents{}
	return NewService(store, NewMemoryCache(), push, events), store, push, events
}
