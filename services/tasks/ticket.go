package tasks

import (
	"encoding/json"

	"voyago/config"
	"voyago/models"

	"github.com/hibiken/asynq"
)

const TypeTicketIssue = "ticket:issue"

// Enqueuer hands e-ticket issuance work to the background worker.
type Enqueuer interface {
	EnqueueTicketIssue(payload models.TicketPayload) error
}

// AsynqEnqueuer implements Enqueuer on the shared Redis queue.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer builds the asynq client against the ticket queue DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTicketDB,
		}),
	}
}

// EnqueueTicketIssue queues one e-ticket rendering task.
func (e *AsynqEnqueuer) EnqueueTicketIssue(payload models.TicketPayload) error {
	task, err := NewTicketTask(payload)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, asynq.MaxRetry(3))
	return err
}

// NewTicketTask builds the asynq task carrying a ticket payload.
func NewTicketTask(payload models.TicketPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTicketIssue, b), nil
}
