package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/models"
)

func (h *Handler) ImageUpload(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.Error(errs.ErrMissingFile)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.Error(errs.ErrMissingFile)
		return
	}

	stored, err := h.Media.StoreImages(hole.ProjectName, hole.HoleID, files)
	if err != nil {
		c.Error(err)
		return
	}

	for _, path := range stored {
		image := models.Image{
			UUID:        uuid.NewString(),
			DrillholeID: hole.ID,
			ProjectName: hole.ProjectName,
			Path:        path,
		}
		if err := models.Persist(h.DB, &image); err != nil {
			log.Error().
				Err(err).
				Str("path", path).
				Msg("image stored on disk but record rejected")
		}
	}

	c.JSON(http.StatusCreated, types.Response{
		Status:  "success",
		Message: "imported",
		Data:    gin.H{"count": len(stored)},
	})
}

func (h *Handler) ImageList(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}

	pairs, err := h.Media.ListImages(hole.ProjectName, hole.HoleID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   pairs,
	})
}

// ImageAnnotate queues one annotation pass; the worker runs the model.
func (h *Handler) ImageAnnotate(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}

	raw, pending, err := h.Media.PendingImages(hole.ProjectName, hole.HoleID)
	if err != nil {
		c.Error(err)
		return
	}
	if len(raw) == 0 {
		c.Error(errs.ErrNoImages)
		return
	}
	if len(pending) == 0 {
		c.JSON(http.StatusOK, types.Response{
			Status:  "success",
			Message: "nothing to annotate",
		})
		return
	}

	if err := h.Queue.EnqueueAnnotate(hole.ProjectName, hole.HoleID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, types.Response{
		Status:  "success",
		Message: "annotation queued",
	})
}
