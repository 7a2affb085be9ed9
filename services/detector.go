package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog/log"

	"drillhub/api/errs"
)

// Detector runs the external detection model over a drillhole's pending
// images. The model itself lives in a container image; this service only
// does the file-set bookkeeping around one container run. Each processed
// output is written as processed_<original_name> next to the raw set.
type Detector struct {
	Image     string
	ModelPath string
	Client    *client.Client
}

func NewDetector(image, modelPath string) (*Detector, error) {
	c, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		log.Error().
			Err(err).
			Msg("failed to connect to docker daemon")
		return nil, err
	}
	return &Detector{
		Image:     image,
		ModelPath: modelPath,
		Client:    c,
	}, nil
}

// AnnotatePending detects on every raw image without a processed
// counterpart. No raw images at all is an error; nothing pending is not.
func (d *Detector) AnnotatePending(ctx context.Context, media *MediaStore, project, hole string) error {
	model, err := filepath.Abs(d.ModelPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(model); err != nil {
		return fmt.Errorf("%s: %w", d.ModelPath, errs.ErrModelNotFound)
	}

	raw, pending, err := media.PendingImages(project, hole)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errs.ErrNoImages
	}
	if len(pending) == 0 {
		return nil
	}

	holeDir, err := filepath.Abs(filepath.Join(media.Root, project, hole))
	if err != nil {
		return err
	}

	cmd := []string{
		"--model", "/model/" + filepath.Base(model),
		"--source", "/data/" + imagesDir,
		"--out", "/data/" + processedDir,
	}
	cmd = append(cmd, pending...)

	resp, err := d.Client.ContainerCreate(ctx,
		&container.Config{
			Image: d.Image,
			Cmd:   cmd,
			Labels: map[string]string{
				"label": "drillhub",
			},
		},
		&container.HostConfig{
			Binds: []string{
				holeDir + ":/data",
				model + ":/model/" + filepath.Base(model) + ":ro",
			},
			AutoRemove: false,
		},
		nil, nil, "")
	if err != nil {
		log.Error().
			Err(err).
			Str("image", d.Image).
			Msg("failed to create detector container")
		return err
	}
	defer func() {
		if err := d.Client.ContainerRemove(context.Background(), resp.ID, container.RemoveOptions{Force: true}); err != nil {
			log.Error().
				Err(err).
				Str("container", resp.ID).
				Msg("failed to remove detector container")
		}
	}()

	if err := d.Client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		log.Error().
			Err(err).
			Str("container", resp.ID).
			Msg("failed to start detector container")
		return err
	}

	waitCh, errCh := d.Client.ContainerWait(ctx, resp.ID, container.WaitConditionNotRunning)
	select {
	case status := <-waitCh:
		if status.StatusCode != 0 {
			return fmt.Errorf("detector exited with status %d", status.StatusCode)
		}
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Info().
		Str("hole", hole).
		Int("images", len(pending)).
		Msg("annotation finished")
	return nil
}
