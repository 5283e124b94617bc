package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/minhnq/campushub-BE/internal/notification"
)

const (
	TaskSendNotificationEmail = "notification:email"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskSendNotificationEmail(ctx context.Context, payload *PayloadSendNotificationEmail, opts ...asynq.Option) error

	// EnqueueNotificationEmail satisfies notification.EmailQueue so the
	// dispatcher can hand off email side effects without knowing asynq.
	EnqueueNotificationEmail(ctx context.Context, payload notification.EmailPayload) error
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
