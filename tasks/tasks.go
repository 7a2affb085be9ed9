package tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"drillhub/services"
)

const TypeAnnotate = "annotate:drillhole"

type AnnotatePayload struct {
	Project string
	Hole    string
}

type Queue struct {
	Addr string
}

// EnqueueAnnotate queues one annotation pass for a drillhole. The hole id
// doubles as the task id, so a hole has at most one queued pass at a time.
func (q *Queue) EnqueueAnnotate(project, hole string) error {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: q.Addr})
	defer client.Close()

	payload, err := json.Marshal(AnnotatePayload{Project: project, Hole: hole})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAnnotate, payload)

	_, err = client.Enqueue(task, asynq.TaskID(hole), asynq.MaxRetry(1))
	if err != nil {
		log.Error().
			Err(err).
			Str("hole", hole).
			Msg("failed to enqueue annotation task")
		return err
	}
	return nil
}

// HandleAnnotate runs the detector over the drillhole's pending images.
func HandleAnnotate(media *services.MediaStore, detector *services.Detector) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload AnnotatePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		if err := detector.AnnotatePending(ctx, media, payload.Project, payload.Hole); err != nil {
			log.Error().
				Err(err).
				Str("hole", payload.Hole).
				Msg("annotation failed")
			return err
		}
		return nil
	}
}
