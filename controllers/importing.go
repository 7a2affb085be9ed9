package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drillhub/api/errs"
	"drillhub/api/types"
	"drillhub/services"
)

// importCSV runs one uploaded delimited file through the row-wise import
// pipeline. On failure the rows imported before the failing one stay in
// the store; only a fully imported file reports success.
func (h *Handler) importCSV(c *gin.Context, field string, row services.RowFunc) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.Error(errs.ErrMissingFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer f.Close()

	result, err := services.ImportRows(h.DB, f, h.Delimiter, row)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.Response{
			Status:  "error",
			Message: err.Error(),
			Data:    result,
		})
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "imported",
		Data:    result,
	})
}

func (h *Handler) SampleImport(c *gin.Context) {
	h.importCSV(c, "samples", services.SampleRow)
}

func (h *Handler) DeviationImport(c *gin.Context) {
	h.importCSV(c, "deviations", services.DeviationRow)
}

func (h *Handler) LithologyImport(c *gin.Context) {
	h.importCSV(c, "litho", services.LithologyRow(h.DB))
}
