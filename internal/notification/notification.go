package notification

import (
	"time"

	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
)

const (
	// Upper bound for the page size of the list and history read models.
	maxPageLimit = 100

	// Cap on the batch returned by the incremental polling read model.
	recentBatchLimit = 50

	// The unread count drives UI badges, so it must go stale in seconds.
	unreadCountTTL = 15 * time.Second

	// Paginated listings tolerate more staleness.
	listCacheTTL = 2 * time.Minute

	// Push and realtime deliveries are abandoned past this bound. They must
	// never make a dispatch caller wait.
	channelTimeout = 5 * time.Second
)

// Scope identifies one notification stream. The same person acting as both
// a user and a provider has two disjoint streams.
type Scope struct {
	RecipientID string
	Role        db.UserRole
}

// Service coordinates the durable notification record with the two
// best-effort delivery channels (push, realtime) and the cached read models.
// The store row is the single source of truth; push and realtime never
// affect the outcome of a dispatch.
type Service struct {
	store          db.Store
	cache          Cache
	push           PushSender
	events         event.EventSender
	channelTimeout time.Duration
}

func NewService(store db.Store, cache Cache, push PushSender, events event.EventSender) *Service {
	return &Service{
		store:          store,
		cache:          cache,
		push:           push,
		events:         events,
		channelTimeout: channelTimeout,
	}
}
