package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/enrollment"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

type courseSnapshotter interface {
	Snapshot(ctx context.Context) ([]models.Course, error)
}

type enrollmentAPI interface {
	SubmitEnrollment(ctx context.Context, payload models.SubmissionPayload) error
	ListEnrollments(ctx context.Context, token string) ([]models.EnrollmentRecord, error)
	DeleteEnrollment(ctx context.Context, token string, id int64) error
}

// EnrollmentService drives the admission pipeline: assist recomputes derived
// state for the editor, Submit runs the validate → capacity-check → normalize
// → submit flow. The draft itself never leaves the caller; any failure keeps
// it editable.
type EnrollmentService struct {
	courses  courseSnapshotter
	api      enrollmentAPI
	sessions bearerSource
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(courses courseSnapshotter, api enrollmentAPI, sessions bearerSource, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		courses:  courses,
		api:      api,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// Assist recomputes validation errors and derived requirement state for the
// draft as currently typed. Called after every field change; nothing from a
// prior draft state survives into the result.
func (s *EnrollmentService) Assist(draft models.EnrollmentDraft) models.AssistResult {
	flags := enrollment.DeriveFlags(draft, s.now())
	errs := enrollment.Validate(draft)
	return models.AssistResult{
		Errors:              errs,
		RequiredFields:      enrollment.RequiredFields(draft),
		ShowDisabilityField: flags.ShowDisabilityFields,
		ShowDeviceField:     flags.ShowDeviceField,
		Minor:               flags.Minor,
		Eligible:            len(errs) == 0,
	}
}

// Submit runs the full admission pipeline. Field errors come back as data
// with a nil receipt; admission and transport failures come back as typed
// errors. On success the normalized payload has been accepted upstream and a
// receipt is issued.
func (s *EnrollmentService) Submit(ctx context.Context, draft models.EnrollmentDraft) (*models.SubmissionReceipt, map[string]string, error) {
	if errs := enrollment.Validate(draft); len(errs) > 0 {
		return nil, errs, nil
	}

	courses, err := s.courses.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	course, err := enrollment.CheckCapacity(draft, courses)
	if err != nil {
		s.metrics.RecordSubmission("rejected_local")
		return nil, nil, err
	}

	payload := enrollment.Normalize(draft, course, s.now())

	// One outstanding POST per person and course; a second concurrent submit
	// for the same pair is refused instead of duplicated.
	key := fmt.Sprintf("%s:%d", payload.CPF, course.ID)
	if !s.acquire(key) {
		return nil, nil, appErrors.Clone(appErrors.ErrSubmissionInFlight, "")
	}
	defer s.release(key)

	start := time.Now()
	err = s.api.SubmitEnrollment(ctx, payload)
	s.metrics.ObserveUpstream("submit_enrollment", err, time.Since(start))
	if err != nil {
		if appErrors.HasCode(err, appErrors.ErrSubmissionConflict) {
			// The local snapshot was stale and another client won the seat
			// race. Surfaced as-is so the user knows the input was fine.
			s.metrics.RecordSubmission("conflict")
		} else {
			s.metrics.RecordSubmission("failed")
		}
		return nil, nil, err
	}

	s.metrics.RecordSubmission("accepted")
	s.logger.Info("enrollment accepted",
		zap.String("course", course.Name),
		zap.Int64("course_id", course.ID))

	return &models.SubmissionReceipt{
		Reference:   uuid.NewString(),
		Course:      course.Name,
		CourseID:    course.ID,
		SubmittedAt: s.now(),
	}, nil, nil
}

// List returns the detailed enrollment roster. Admin only.
func (s *EnrollmentService) List(ctx context.Context) ([]models.EnrollmentRecord, error) {
	start := time.Now()
	records, err := s.api.ListEnrollments(ctx, s.sessions.BearerToken(ctx))
	s.metrics.ObserveUpstream("list_enrollments", err, time.Since(start))
	return records, err
}

// Delete removes an enrollment record. Admin only.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.api.DeleteEnrollment(ctx, s.sessions.BearerToken(ctx), id)
	s.metrics.ObserveUpstream("delete_enrollment", err, time.Since(start))
	return err
}

func (s *EnrollmentService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *EnrollmentService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
