package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Enqueuer is what domain code depends on; *Client implements it
type Enqueuer interface {
	EnqueueJSON(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error
}

// Client wraps asynq.Client with JSON payload encoding
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) EnqueueJSON(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	log.Debug().Str("task", taskType).Str("task_id", info.ID).Str("queue", info.Queue).Msg("[Queue] Enqueued")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// UnmarshalTask decodes a JSON payload. Malformed payloads are not retried.
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}
