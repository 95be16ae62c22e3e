package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/service"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/response"
)

// EnrollmentHandler exposes the enrollment form pipeline and the admin
// roster endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Assist godoc
// @Summary Recompute validation errors and conditional-field state for a draft
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body models.EnrollmentDraft true "Draft as currently typed"
// @Success 200 {object} response.Envelope
// @Router /inscricoes/validar [post]
func (h *EnrollmentHandler) Assist(c *gin.Context) {
	var draft models.EnrollmentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.enrollments.Assist(draft))
}

// Submit godoc
// @Summary Submit an enrollment
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body models.EnrollmentDraft true "Completed draft"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope "Field validation errors"
// @Failure 409 {object} response.Envelope "Course full or seat race lost"
// @Router /inscricoes [post]
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var draft models.EnrollmentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	receipt, fieldErrs, err := h.enrollments.Submit(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}
	response.Created(c, receipt)
}

// List godoc
// @Summary List enrollment records
// @Tags Enrollments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/inscricoes [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	records, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Delete godoc
// @Summary Delete an enrollment record
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 204
// @Router /admin/inscricoes/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid enrollment id"))
		return
	}
	if err := h.enrollments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
