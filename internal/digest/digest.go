package digest

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

// Scheduler periodically enumerates recipient scopes that still have unread
// notifications and enqueues one digest task per scope. The heavy lifting
// (the push itself) happens in the worker.
type Scheduler struct {
	store           db.Store
	taskDistributor worker.TaskDistributor
	scheduler       gocron.Scheduler
	cronSpec        string
}

func NewScheduler(store db.Store, taskDistributor worker.TaskDistributor, cronSpec string) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		store:           store,
		taskDistributor: taskDistributor,
		scheduler:       scheduler,
		cronSpec:        cronSpec,
	}, nil
}

// Start registers the digest cron job and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cronSpec, false),
		gocron.NewTask(
			func() {
				s.enqueueDigests()
			},
		),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) enqueueDigests() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scopes, err := s.store.ListScopesWithUnread(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list scopes with unread notifications")
		return
	}

	enqueued := 0
	for _, scope := range scopes {
		err = s.taskDistributor.DistributeTaskUnreadDigest(ctx, &worker.PayloadUnreadDigest{
			RecipientID:   scope.RecipientID,
			RecipientRole: scope.RecipientRole,
			UnreadCount:   scope.UnreadCount,
		})
		if err != nil {
			log.Error().Err(err).Str("recipient_id", scope.RecipientID).Msg("failed to enqueue digest task")
			continue
		}
		enqueued++
	}

	log.Info().Int("scopes", len(scopes)).Int("enqueued", enqueued).Msg("unread digest run finished")
}
