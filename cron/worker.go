package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyago/config"
	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/services/tasks"
	"voyago/services/ticket"

	"github.com/hibiken/asynq"
)

// InitTicketWorker runs the e-ticket async worker in background.
func InitTicketWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTicketDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTicketIssue, handleTicketTask(bookings))

	go func() {
		log.Println("[TicketWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TicketWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TicketWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleTicketTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TicketPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TicketHandler] invalid payload: %v", err)
			return err
		}

		bk, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[TicketHandler] booking %s not found: %v", p.BookingID, err)
			return err
		}
		if bk.TicketIssued {
			// Re-delivered task; the ticket already exists.
			return nil
		}

		inv := &models.Invoice{
			InvoiceID: p.InvoiceID,
			BookingID: bk.ID,
			Method:    p.Method,
			PaymentID: bk.PaymentID,
		}

		path, err := ticket.WriteTicket(config.AppConfig.TicketDir, bk, inv)
		if err != nil {
			log.Printf("[TicketHandler] failed to issue ticket for %s: %v", bk.ID, err)
			return err
		}

		if err := bookings.MarkTicketIssued(ctx, bk.ID); err != nil {
			log.Printf("[TicketHandler] failed to flag ticket for %s: %v", bk.ID, err)
			return err
		}

		log.Printf("[TicketHandler] issued %s", path)
		return nil
	}
}
