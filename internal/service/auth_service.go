package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

type sessionManager interface {
	Login(ctx context.Context, req models.LoginRequest) (models.SessionInfo, error)
	Logout(ctx context.Context)
	Info(ctx context.Context) models.SessionInfo
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	BearerToken(ctx context.Context) string
	RemoteValidate(ctx context.Context) (bool, error)
}

// AuthService fronts the session manager for the HTTP surface.
type AuthService struct {
	sessions  sessionManager
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(sessions sessionManager, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{sessions: sessions, validator: validate, logger: logger}
}

// Login authenticates against the upstream and establishes the session.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.SessionInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.SessionInfo{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	return s.sessions.Login(ctx, req)
}

// Logout clears the session. It never fails.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Logout(ctx)
}

// Info returns the current session status with displayable claims.
func (s *AuthService) Info(ctx context.Context) models.SessionInfo {
	return s.sessions.Info(ctx)
}

// RemoteValidate checks the token against the backend. A definitive
// rejection is reported as SessionExpired without clearing the session; the
// caller chooses when to force logout.
func (s *AuthService) RemoteValidate(ctx context.Context) error {
	if !s.sessions.IsAuthenticated(ctx) {
		return appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}
	valid, err := s.sessions.RemoteValidate(ctx)
	if err != nil {
		return err
	}
	if !valid {
		return appErrors.Clone(appErrors.ErrSessionExpired, "")
	}
	return nil
}
