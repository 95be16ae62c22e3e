package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

type reportAPI interface {
	RequestReport(ctx context.Context, token string, payload json.RawMessage) (json.RawMessage, error)
}

// ReportService proxies report generation to the upstream. Formatting and
// storage of the produced spreadsheet are entirely the backend's concern.
type ReportService struct {
	api      reportAPI
	sessions bearerSource
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(api reportAPI, sessions bearerSource, metrics *MetricsService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{api: api, sessions: sessions, metrics: metrics, logger: logger}
}

// Generate forwards the report request with the admin bearer token and
// returns the upstream response verbatim.
func (s *ReportService) Generate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	start := time.Now()
	result, err := s.api.RequestReport(ctx, s.sessions.BearerToken(ctx), payload)
	s.metrics.ObserveUpstream("request_report", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	s.logger.Info("report requested")
	return result, nil
}
