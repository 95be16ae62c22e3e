package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

const courseCacheKey = "portal:courses"

type courseAPI interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, token string, req models.CreateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, token string, id int64) error
}

type bearerSource interface {
	BearerToken(ctx context.Context) string
}

// CourseService serves the public course catalog and the admin course
// operations, keeping a short-lived snapshot cache in front of the upstream.
type CourseService struct {
	api       courseAPI
	sessions  bearerSource
	cache     *redis.Client
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCourseService constructs CourseService. The cache client may be nil, in
// which case every listing goes straight to the upstream.
func NewCourseService(api courseAPI, sessions bearerSource, cache *redis.Client, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		api:       api,
		sessions:  sessions,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Snapshot returns the current course list, from cache when fresh. The cache
// only shortens the staleness window; the capacity decision remains with the
// upstream either way.
func (s *CourseService) Snapshot(ctx context.Context) ([]models.Course, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, courseCacheKey).Bytes(); err == nil {
			var cached []models.Course
			if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
				s.metrics.RecordCacheLookup(true)
				return cached, nil
			}
		}
		s.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	courses, err := s.api.ListCourses(ctx)
	s.metrics.ObserveUpstream("list_courses", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, jsonErr := json.Marshal(courses); jsonErr == nil {
			if err := s.cache.Set(ctx, courseCacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache course snapshot", zap.Error(err))
			}
		}
	}
	return courses, nil
}

// List returns the catalog with the derived open/closed enrollment state.
func (s *CourseService) List(ctx context.Context) ([]models.CourseView, error) {
	courses, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	views := make([]models.CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, models.CourseView{Course: course, Open: course.IsOpenForEnrollment(today)})
	}
	return views, nil
}

// Create registers a new course upstream. Admin only.
func (s *CourseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	start := time.Now()
	course, err := s.api.CreateCourse(ctx, s.sessions.BearerToken(ctx), req)
	s.metrics.ObserveUpstream("create_course", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return course, nil
}

// Delete removes a course upstream. Admin only.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.api.DeleteCourse(ctx, s.sessions.BearerToken(ctx), id)
	s.metrics.ObserveUpstream("delete_course", err, time.Since(start))
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, courseCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate course cache", zap.Error(err))
	}
}
