package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/service"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/response"
)

// ReportHandler proxies report generation to the upstream.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Generate godoc
// @Summary Request a report from the course service
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/relatorio [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.reports.Generate(c.Request.Context(), json.RawMessage(body))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
