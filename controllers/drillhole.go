package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/models"
)

const dateLayout = "2006-01-02"

func (h *Handler) DrillholeCreate(c *gin.Context) {
	var request types.DrillholeRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if err := h.DB.First(&models.Project{}, "name = ?", request.Project).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	start, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		c.Error(err)
		return
	}
	end, err := time.Parse(dateLayout, request.EndDate)
	if err != nil {
		c.Error(err)
		return
	}

	hole := models.Drillhole{
		ProjectName: request.Project,
		HoleID:      request.HoleID,
		StartDate:   start,
		EndDate:     end,
		TeoAzimuth:  request.TeoAzimuth,
		TeoIncl:     request.TeoIncl,
		RealAzimuth: request.RealAzimuth,
		RealIncl:    request.RealIncl,
		UTMZone:     request.UTMZone,
		Northing:    *request.Northing,
		Easting:     *request.Easting,
		Elevation:   request.Elevation,
	}
	if err := models.Persist(h.DB, &hole); err != nil {
		c.Error(err)
		return
	}
	if _, err := h.Media.EnsureDrillhole(hole.ProjectName, hole.HoleID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Response{
		Status:  "success",
		Message: "created",
	})
}

func (h *Handler) DrillholeList(c *gin.Context) {
	var holes []models.Drillhole

	if project := c.Query("project"); project != "" {
		if err := h.DB.First(&models.Project{}, "name = ?", project).Error; err != nil {
			c.Error(errs.ErrProjectNotFound)
			return
		}
		h.DB.Find(&holes, "project_name = ?", project)
	} else {
		h.DB.Find(&holes)
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   holes,
	})
}

func (h *Handler) DrillholeGet(c *gin.Context) {
	var hole models.Drillhole

	id := c.Params.ByName("hole_id")
	if err := h.DB.First(&hole, "hole_id = ?", id).Error; err != nil {
		c.Error(errs.ErrDrillholeNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   hole,
	})
}

func (h *Handler) DrillholeUpdate(c *gin.Context) {
	var hole models.Drillhole
	var request types.DrillholeUpdateRequest

	id := c.Params.ByName("hole_id")
	if err := h.DB.First(&hole, "hole_id = ?", id).Error; err != nil {
		c.Error(errs.ErrDrillholeNotFound)
		return
	}
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	start, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		c.Error(err)
		return
	}
	end, err := time.Parse(dateLayout, request.EndDate)
	if err != nil {
		c.Error(err)
		return
	}

	oldHoleID := hole.HoleID
	columns := map[string]any{
		"hole_id":      request.HoleID,
		"start_date":   start,
		"end_date":     end,
		"teo_azimuth":  request.TeoAzimuth,
		"teo_incl":     request.TeoIncl,
		"real_azimuth": request.RealAzimuth,
		"real_incl":    request.RealIncl,
		"utm_zone":     request.UTMZone,
		"northing":     *request.Northing,
		"easting":      *request.Easting,
		"elevation":    request.Elevation,
	}
	if err := models.Update(h.DB, &hole, columns); err != nil {
		c.Error(err)
		return
	}
	if request.HoleID != oldHoleID {
		if err := h.Media.RenameDrillhole(hole.ProjectName, oldHoleID, request.HoleID); err != nil {
			log.Error().
				Err(err).
				Str("hole", request.HoleID).
				Msg("hole id updated but directory rename failed")
		}
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
		Data:    hole,
	})
}

func (h *Handler) DrillholeDelete(c *gin.Context) {
	var hole models.Drillhole

	id := c.Params.ByName("hole_id")
	if err := h.DB.First(&hole, "hole_id = ?", id).Error; err != nil {
		c.Error(errs.ErrDrillholeNotFound)
		return
	}

	if err := h.DB.Delete(&hole).Error; err != nil {
		c.Error(err)
		return
	}
	if err := h.Media.RemoveDrillhole(hole.ProjectName, hole.HoleID); err != nil {
		log.Error().
			Err(err).
			Str("hole", hole.HoleID).
			Msg("drillhole rows deleted but directory removal failed")
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "deleted",
	})
}
