package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/models"
)

func (h *Handler) ProjectCreate(c *gin.Context) {
	var request types.ProjectRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	project := models.Project{
		Name:     request.Name,
		Comments: request.Comments,
	}
	if err := models.Persist(h.DB, &project); err != nil {
		c.Error(err)
		return
	}
	if _, err := h.Media.EnsureProject(project.Name); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Response{
		Status:  "success",
		Message: "created",
	})
}

func (h *Handler) ProjectList(c *gin.Context) {
	var projects []models.Project

	h.DB.Find(&projects)

	type projectInfo struct {
		Name           string `json:"name"`
		Comments       string `json:"comments"`
		DrillholeCount int64  `json:"drillhole_count"`
	}
	infos := make([]projectInfo, 0, len(projects))
	for _, p := range projects {
		var count int64
		h.DB.Model(&models.Drillhole{}).Where("project_name = ?", p.Name).Count(&count)
		infos = append(infos, projectInfo{
			Name:           p.Name,
			Comments:       p.Comments,
			DrillholeCount: count,
		})
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   infos,
	})
}

func (h *Handler) ProjectGet(c *gin.Context) {
	var project models.Project

	name := c.Params.ByName("name")
	if err := h.DB.Preload("Drillholes").First(&project, "name = ?", name).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   project,
	})
}

// ProjectDelete removes the project rows first and the directory tree only
// after the store delete went through. A failed tree removal is logged for
// manual reconciliation, not surfaced as a request failure.
func (h *Handler) ProjectDelete(c *gin.Context) {
	var project models.Project

	name := c.Params.ByName("name")
	if err := h.DB.First(&project, "name = ?", name).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	if err := h.DB.Delete(&project).Error; err != nil {
		c.Error(err)
		return
	}
	if err := h.Media.RemoveProject(name); err != nil {
		log.Error().
			Err(err).
			Str("project", name).
			Msg("project rows deleted but directory removal failed")
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "deleted",
	})
}
