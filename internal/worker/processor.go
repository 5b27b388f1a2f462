package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type RedisTaskProcessor struct {
	server              *asynq.Server
	notificationService *notification.Service
	push                notification.PushSender
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, notificationService *notification.Service, push notification.PushSender) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:              server,
		notificationService: notificationService,
		push:                push,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskDispatchNotification, processor.ProcessTaskDispatchNotification)
	mux.HandleFunc(TaskUnreadDigest, processor.ProcessTaskUnreadDigest)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
