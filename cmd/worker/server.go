package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/config"
	"bookclub-backend/internal/infrastructure/hook"
)

// setupAsynqServer configures the task server and starts it in the
// background. Only the site rebuild task runs here; its handler swallows
// delivery failures, so the error handler below fires for decode-level
// problems only.
func setupAsynqServer(cfg *config.Config) *asynq.Server {
	mux := asynq.NewServeMux()
	mux.Handle(hook.TypeSiteRebuild, hook.NewRebuildHandler(cfg.Hook.BuildHookURL))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			// Rebuild notifications are the only producer and they enqueue
			// to "low".
			Queues: map[string]int{
				"low": 5,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("Task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("Worker starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("Worker failed")
		}
	}()

	return srv
}
