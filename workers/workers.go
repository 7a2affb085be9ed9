package main

import (
	"os"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drillhub/config"
	"drillhub/services"
	"drillhub/tasks"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := config.Load(os.Getenv("DRILLHUB_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	media := services.NewMediaStore(cfg.MediaRoot)
	detector, err := services.NewDetector(cfg.Detector.Image, cfg.Detector.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create detector")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency: 2,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAnnotate, tasks.HandleAnnotate(media, detector))

	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("failed to start workers")
	}
}
