package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskDispatchNotification = "notification:dispatch"
	TaskUnreadDigest         = "notification:digest"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskDispatchNotification(ctx context.Context, payload *PayloadDispatchNotification, opts ...asynq.Option) error
	DistributeTaskUnreadDigest(ctx context.Context, payload *PayloadUnreadDigest, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
