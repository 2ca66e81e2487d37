package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tutorhq/config"
	leadRepo "tutorhq/database/repository/lead"
	"tutorhq/models"
	"tutorhq/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitFollowUpWorker runs the async worker in background.
func InitFollowUpWorker(leads leadRepo.LeadRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendFollowUp, handleFollowUpTask(leads))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleFollowUpTask flips the lead to follow-up-due when its scheduled
// date fires. The dashboard surfaces due leads to the tutor.
func handleFollowUpTask(leads leadRepo.LeadRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowUpHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[FollowUpHandler] follow-up due for lead %s (%s), scheduled %s", p.LeadID, p.LeadName, p.FireDate)

		if err := leads.MarkFollowUpDue(p.LeadID); err != nil {
			// Lead may have been deleted since scheduling; nothing to retry.
			log.Printf("[FollowUpHandler] failed to mark lead %s due: %v", p.LeadID, err)
			return nil
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FollowUpWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
