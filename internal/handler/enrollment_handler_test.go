package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/service"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/response"
)

type stubSnapshotter struct {
	courses []models.Course
}

func (s *stubSnapshotter) Snapshot(ctx context.Context) ([]models.Course, error) {
	return s.courses, nil
}

type stubEnrollmentAPI struct {
	submitErr error
}

func (s *stubEnrollmentAPI) SubmitEnrollment(ctx context.Context, payload models.SubmissionPayload) error {
	return s.submitErr
}

func (s *stubEnrollmentAPI) ListEnrollments(ctx context.Context, token string) ([]models.EnrollmentRecord, error) {
	return nil, nil
}

func (s *stubEnrollmentAPI) DeleteEnrollment(ctx context.Context, token string, id int64) error {
	return nil
}

type stubBearer struct{}

func (stubBearer) BearerToken(ctx context.Context) string { return "" }

func newEnrollmentRouter(submitErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	snap := &stubSnapshotter{courses: []models.Course{
		{ID: 7, Name: "Excel Básico", TotalSeats: 10, FilledSeats: 3},
	}}
	svc := service.NewEnrollmentService(snap, &stubEnrollmentAPI{submitErr: submitErr}, stubBearer{}, nil, nil)
	h := NewEnrollmentHandler(svc)

	router := gin.New()
	router.POST("/inscricoes", h.Submit)
	router.POST("/inscricoes/validar", h.Assist)
	router.DELETE("/admin/inscricoes/:id", h.Delete)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func validDraft() models.EnrollmentDraft {
	return models.EnrollmentDraft{
		Name:         "Maria da Silva",
		CPF:          "529.982.247-25",
		Email:        "maria@example.com",
		Phone:        "(13) 98765-4321",
		BirthDate:    "1990-05-20",
		Gender:       "F",
		Course:       "Excel Básico",
		Education:    "Médio completo",
		Employed:     models.AnswerNo,
		Neighborhood: "Centro",
		Caregiver:    models.AnswerNo,
		Disability:   models.AnswerNo,
		Referral:     "Redes Sociais",
		WhatsApp:     models.AnswerYes,
	}
}

func TestSubmitHandlerCreated(t *testing.T) {
	router := newEnrollmentRouter(nil)

	w := postJSON(t, router, "/inscricoes", validDraft())
	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data models.SubmissionReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Reference)
	assert.Equal(t, "Excel Básico", envelope.Data.Course)
}

func TestSubmitHandlerFieldErrors(t *testing.T) {
	router := newEnrollmentRouter(nil)

	draft := validDraft()
	draft.CPF = "123"

	w := postJSON(t, router, "/inscricoes", draft)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
	assert.Equal(t, "CPF inválido", envelope.Fields[models.FieldCPF])
}

func TestSubmitHandlerConflict(t *testing.T) {
	router := newEnrollmentRouter(appErrors.Clone(appErrors.ErrSubmissionConflict, ""))

	w := postJSON(t, router, "/inscricoes", validDraft())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SUBMISSION_CONFLICT")
}

func TestSubmitHandlerMalformedBody(t *testing.T) {
	router := newEnrollmentRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscricoes", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistHandler(t *testing.T) {
	router := newEnrollmentRouter(nil)

	draft := validDraft()
	draft.Email = ""

	w := postJSON(t, router, "/inscricoes/validar", draft)
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.AssistResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Eligible)
	assert.Contains(t, envelope.Data.Errors, models.FieldEmail)
}

func TestDeleteHandlerInvalidID(t *testing.T) {
	router := newEnrollmentRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/inscricoes/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
