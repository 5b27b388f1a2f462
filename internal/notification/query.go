package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

const (
	opList        = "list"
	opUnreadCount = "unread_count"
	opHistory     = "history"
)

type Pagination struct {
	CurrentPage int32 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int32 `json:"limit"`
}

type ListParams struct {
	Page       int32
	Limit      int32
	TypeFilter string
}

type ListResult struct {
	Items      []db.Notification `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// List returns one page of the recipient's notifications, newest first with
// id as the tie-breaker so pagination stays stable. TypeFilter restricts to
// titles containing the given substring, case-insensitive.
func (s *Service) List(ctx context.Context, scope Scope, arg ListParams) (ListResult, error) {
	if err := validatePagination(arg.Page, arg.Limit); err != nil {
		return ListResult{}, err
	}

	params := fmt.Sprintf("p%d:l%d:t%s", arg.Page, arg.Limit, strings.ToLower(arg.TypeFilter))
	var cached ListResult
	if ok := s.cacheGet(ctx, scope, opList, params, &cached); ok {
		return cached, nil
	}

	titleFilter := optionalString(escapeLike(arg.TypeFilter))

	totalCount, err := s.store.CountNotifications(ctx, db.CountNotificationsParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		TitleFilter:   titleFilter,
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	items, err := s.store.ListNotifications(ctx, db.ListNotificationsParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		TitleFilter:   titleFilter,
		Limit:         arg.Limit,
		Offset:        (arg.Page - 1) * arg.Limit,
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	result := ListResult{
		Items:      items,
		Pagination: paginate(arg.Page, arg.Limit, totalCount),
	}
	s.cacheSet(ctx, scope, opList, params, result, listCacheTTL)

	return result, nil
}

// UnreadCount reports the number of unread notifications in the scope,
// stale by at most unreadCountTTL.
func (s *Service) UnreadCount(ctx context.Context, scope Scope) (int64, error) {
	var cached int64
	if ok := s.cacheGet(ctx, scope, opUnreadCount, "", &cached); ok {
		return cached, nil
	}

	count, err := s.store.CountUnreadNotifications(ctx, db.CountUnreadNotificationsParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	s.cacheSet(ctx, scope, opUnreadCount, "", count, unreadCountTTL)

	return count, nil
}

type RecentResult struct {
	Items []db.Notification `json:"items"`
	Count int               `json:"count"`
}

// RecentSince returns the notifications created strictly after the given
// instant, newest first, capped at recentBatchLimit. Polling clients advance
// their cursor to the created_at of the newest returned item, or keep the
// previous value when the result is empty. Not cached: every poll carries a
// different cursor.
func (s *Service) RecentSince(ctx context.Context, scope Scope, since time.Time) (RecentResult, error) {
	items, err := s.store.ListNotificationsSince(ctx, db.ListNotificationsSinceParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		CreatedAt:     since,
		Limit:         recentBatchLimit,
	})
	if err != nil {
		return RecentResult{}, fmt.Errorf("failed to list recent notifications: %w", err)
	}

	return RecentResult{Items: items, Count: len(items)}, nil
}

type HistoryParams struct {
	Page       int32
	Limit      int32
	TypeFilter string
	DateFrom   *time.Time
	DateTo     *time.Time
	ReadStatus *bool
}

type HistoryStats struct {
	Booking int64 `json:"booking"`
	Rating  int64 `json:"rating"`
	Report  int64 `json:"report"`
	System  int64 `json:"system"`
}

type HistoryResult struct {
	Items      []db.Notification `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Stats      HistoryStats      `json:"stats"`
}

// History is the reporting variant of List: the same ordering and type
// filter, plus a date range and read-state filter, plus aggregate counts
// per coarse category derived from the title.
func (s *Service) History(ctx context.Context, scope Scope, arg HistoryParams) (HistoryResult, error) {
	if err := validatePagination(arg.Page, arg.Limit); err != nil {
		return HistoryResult{}, err
	}
	if arg.DateFrom != nil && arg.DateTo != nil && arg.DateFrom.After(*arg.DateTo) {
		return HistoryResult{}, fmt.Errorf("%w: dateFrom must not be after dateTo", ErrValidation)
	}

	params := historyCacheParams(arg)
	var cached HistoryResult
	if ok := s.cacheGet(ctx, scope, opHistory, params, &cached); ok {
		return cached, nil
	}

	titleFilter := optionalString(escapeLike(arg.TypeFilter))

	totalCount, err := s.store.CountNotificationHistory(ctx, db.CountNotificationHistoryParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		TitleFilter:   titleFilter,
		DateFrom:      arg.DateFrom,
		DateTo:        arg.DateTo,
		IsRead:        arg.ReadStatus,
	})
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to count notification history: %w", err)
	}

	items, err := s.store.ListNotificationHistory(ctx, db.ListNotificationHistoryParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		TitleFilter:   titleFilter,
		DateFrom:      arg.DateFrom,
		DateTo:        arg.DateTo,
		IsRead:        arg.ReadStatus,
		Limit:         arg.Limit,
		Offset:        (arg.Page - 1) * arg.Limit,
	})
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to list notification history: %w", err)
	}

	stats, err := s.store.GetNotificationHistoryStats(ctx, db.GetNotificationHistoryStatsParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
		DateFrom:      arg.DateFrom,
		DateTo:        arg.DateTo,
		IsRead:        arg.ReadStatus,
	})
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to compute notification stats: %w", err)
	}

	result := HistoryResult{
		Items:      items,
		Pagination: paginate(arg.Page, arg.Limit, totalCount),
		Stats: HistoryStats{
			Booking: stats.BookingCount,
			Rating:  stats.RatingCount,
			Report:  stats.ReportCount,
			System:  stats.SystemCount,
		},
	}
	s.cacheSet(ctx, scope, opHistory, params, result, listCacheTTL)

	return result, nil
}

func validatePagination(page, limit int32) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be at least 1", ErrValidation)
	}
	if limit < 1 || limit > maxPageLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, maxPageLimit)
	}
	return nil
}

func paginate(page, limit int32, totalCount int64) Pagination {
	return Pagination{
		CurrentPage: page,
		TotalPages:  (totalCount + int64(limit) - 1) / int64(limit),
		TotalCount:  totalCount,
		Limit:       limit,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// likeEscaper neutralizes LIKE metacharacters so the type filter always
// matches a literal substring. Backslash is the default escape character
// in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func historyCacheParams(arg HistoryParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p%d:l%d:t%s", arg.Page, arg.Limit, strings.ToLower(arg.TypeFilter))
	if arg.DateFrom != nil {
		fmt.Fprintf(&b, ":f%d", arg.DateFrom.UnixMilli())
	}
	if arg.DateTo != nil {
		fmt.Fprintf(&b, ":u%d", arg.DateTo.UnixMilli())
	}
	if arg.ReadStatus != nil {
		fmt.Fprintf(&b, ":r%t", *arg.ReadStatus)
	}
	return b.String()
}

// cacheGet treats any cache failure as a miss: a broken cache degrades to
// store reads, it never fails a request.
func (s *Service) cacheGet(ctx context.Context, scope Scope, op string, params string, dest interface{}) bool {
	ok, err := s.cache.Get(ctx, scope, op, params, dest)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Msg("notification cache read failed")
		return false
	}
	return ok
}

// cacheSet only runs after a successful store read, so a failed population
// can never leave a partial entry behind.
func (s *Service) cacheSet(ctx context.Context, scope Scope, op string, params string, value interface{}, ttl time.Duration) {
	if err := s.cache.Set(ctx, scope, op, params, value, ttl); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("notification cache write failed")
	}
}
