package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/models"
)

func (h *Handler) SampleList(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}
	var samples []models.Sample
	h.DB.Find(&samples, "drillhole_id = ?", hole.ID)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   samples,
	})
}

func (h *Handler) DeviationList(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}
	var deviations []models.Deviation
	h.DB.Find(&deviations, "drillhole_id = ?", hole.ID)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   deviations,
	})
}

func (h *Handler) IntervalList(c *gin.Context) {
	hole, ok := h.findHole(c)
	if !ok {
		return
	}
	var intervals []models.LithologyInterval
	h.DB.Preload("Lithology").Find(&intervals, "drillhole_id = ?", hole.ID)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   intervals,
	})
}

func (h *Handler) findHole(c *gin.Context) (*models.Drillhole, bool) {
	var hole models.Drillhole
	id := c.Params.ByName("hole_id")
	if err := h.DB.First(&hole, "hole_id = ?", id).Error; err != nil {
		c.Error(errs.ErrDrillholeNotFound)
		return nil, false
	}
	return &hole, true
}
