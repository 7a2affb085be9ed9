package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/models"
)

// Catalogue management, admin only in the original deployment.

func (h *Handler) LithologyList(c *gin.Context) {
	var lithologies []models.Lithology

	h.DB.Find(&lithologies)
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   lithologies,
	})
}

func (h *Handler) LithologyCreate(c *gin.Context) {
	var request types.LithologyRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	litho := models.Lithology{
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
	}
	if err := models.Persist(h.DB, &litho); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Response{
		Status:  "success",
		Message: "created",
	})
}

func (h *Handler) LithologyDelete(c *gin.Context) {
	code := c.Params.ByName("code")
	result := h.DB.Delete(&models.Lithology{}, "code = ?", code)
	if result.Error != nil {
		c.Error(fmt.Errorf("%v: %w", result.Error, errs.ErrConstraint))
		return
	}
	if result.RowsAffected == 0 {
		c.Error(errs.ErrLithologyNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "deleted",
	})
}
