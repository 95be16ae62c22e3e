// Package session owns the locally persisted authentication state: who the
// current caller is and whether they are still allowed to act. All reads and
// writes of the persisted entries go through the Manager; no caller touches
// the store directly.
package session

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (bool, error)
}

// Manager is the single source of truth for the current session.
type Manager struct {
	store      Store
	api        authAPI
	logger     *zap.Logger
	requireExp bool
	now        func() time.Time
}

// NewManager constructs a Manager.
func NewManager(store Store, api authAPI, logger *zap.Logger, requireExp bool) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, api: api, logger: logger, requireExp: requireExp, now: time.Now}
}

// Login authenticates against the upstream auth endpoint and persists the
// resulting session. Username and role missing from the response body are
// recovered from the token payload; their absence never fails the login.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) (models.SessionInfo, error) {
	resp, err := m.api.Login(ctx, req)
	if err != nil {
		return models.SessionInfo{}, err
	}

	sess := models.Session{
		Authenticated: true,
		Token:         resp.Token,
		Username:      resp.Username,
		Role:          resp.Role,
	}

	decoded := Decode(resp.Token, m.logger)
	if decoded != nil {
		if sess.Username == "" {
			sess.Username = decoded.Payload.Username
		}
		if sess.Role == "" {
			sess.Role = decoded.Payload.Role
		}
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return models.SessionInfo{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	m.logger.Info("session established", zap.String("username", sess.Username), zap.String("role", sess.Role))
	return m.info(sess, decoded), nil
}

// Logout clears every persisted session entry unconditionally. It needs no
// network round trip and never fails the caller.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("failed to clear session store", zap.Error(err))
	}
}

// IsAuthenticated reports whether a structurally valid, non-expired token is
// present. The stored auth flag is recomputed, never taken at face value: a
// stale flag without a valid token is "not authenticated".
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	sess := m.current(ctx)
	if sess.Token == "" {
		return false
	}
	decoded := Decode(sess.Token, m.logger)
	if decoded == nil {
		return false
	}
	return !expired(decoded, m.now().Unix(), m.requireExp)
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func (m *Manager) IsAdmin(ctx context.Context) bool {
	if !m.IsAuthenticated(ctx) {
		return false
	}
	return m.current(ctx).Role == models.RoleAdmin
}

// BearerToken returns the stored token, or "" when absent.
func (m *Manager) BearerToken(ctx context.Context) string {
	return m.current(ctx).Token
}

// Authorize augments the headers with a bearer token when one is present.
// Without a token the headers pass through untouched; credentials are never
// fabricated.
func (m *Manager) Authorize(ctx context.Context, h http.Header) http.Header {
	if h == nil {
		h = http.Header{}
	}
	if token := m.BearerToken(ctx); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// RemoteValidate asks the backend whether the stored token is still accepted.
// A rejection does NOT clear the session here: the caller decides, so the
// surrounding application can show a session-expired notice before forcing
// logout.
func (m *Manager) RemoteValidate(ctx context.Context) (bool, error) {
	sess := m.current(ctx)
	if sess.Token == "" {
		return false, nil
	}
	return m.api.ValidateToken(ctx, sess.Token)
}

// Info returns the displayable session status, claims included.
func (m *Manager) Info(ctx context.Context) models.SessionInfo {
	sess := m.current(ctx)
	return m.info(sess, Decode(sess.Token, m.logger))
}

func (m *Manager) info(sess models.Session, decoded *models.DecodedToken) models.SessionInfo {
	authenticated := sess.Token != "" && decoded != nil && !expired(decoded, m.now().Unix(), m.requireExp)
	return models.SessionInfo{
		Authenticated: authenticated,
		Admin:         authenticated && sess.Role == models.RoleAdmin,
		Username:      sess.Username,
		Role:          sess.Role,
		Claims:        decoded,
	}
}

// current loads the persisted session, tolerating store failures and any
// subset of absent entries.
func (m *Manager) current(ctx context.Context) models.Session {
	sess, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn("failed to load session store", zap.Error(err))
		return models.Session{}
	}
	return sess
}
