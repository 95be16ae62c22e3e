package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

type fakeSessionManager struct {
	loginInfo     models.SessionInfo
	loginErr      error
	loginReq      *models.LoginRequest
	loggedOut     bool
	authenticated bool
	admin         bool
	remoteValid   bool
	remoteErr     error
}

func (f *fakeSessionManager) Login(ctx context.Context, req models.LoginRequest) (models.SessionInfo, error) {
	f.loginReq = &req
	return f.loginInfo, f.loginErr
}

func (f *fakeSessionManager) Logout(ctx context.Context)                  { f.loggedOut = true }
func (f *fakeSessionManager) Info(ctx context.Context) models.SessionInfo { return f.loginInfo }
func (f *fakeSessionManager) IsAuthenticated(ctx context.Context) bool    { return f.authenticated }
func (f *fakeSessionManager) IsAdmin(ctx context.Context) bool            { return f.admin }
func (f *fakeSessionManager) BearerToken(ctx context.Context) string      { return "" }
func (f *fakeSessionManager) RemoteValidate(ctx context.Context) (bool, error) {
	return f.remoteValid, f.remoteErr
}

func TestAuthLoginValidatesPayload(t *testing.T) {
	sessions := &fakeSessionManager{}
	svc := NewAuthService(sessions, nil, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, sessions.loginReq, "invalid payload never reaches the session manager")
}

func TestAuthLoginDelegates(t *testing.T) {
	sessions := &fakeSessionManager{
		loginInfo: models.SessionInfo{Authenticated: true, Admin: true, Username: "admin"},
	}
	svc := NewAuthService(sessions, nil, zap.NewNop())

	info, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, info.Authenticated)
	require.NotNil(t, sessions.loginReq)
	assert.Equal(t, "admin", sessions.loginReq.Username)
}

func TestAuthLogout(t *testing.T) {
	sessions := &fakeSessionManager{}
	svc := NewAuthService(sessions, nil, zap.NewNop())

	svc.Logout(context.Background())
	assert.True(t, sessions.loggedOut)
}

func TestAuthRemoteValidate(t *testing.T) {
	ctx := context.Background()

	// No session at all.
	svc := NewAuthService(&fakeSessionManager{}, nil, zap.NewNop())
	err := svc.RemoteValidate(ctx)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrUnauthorized))

	// Session present but the backend rejects the token.
	sessions := &fakeSessionManager{authenticated: true, remoteValid: false}
	svc = NewAuthService(sessions, nil, zap.NewNop())
	err = svc.RemoteValidate(ctx)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrSessionExpired))
	assert.False(t, sessions.loggedOut, "rejection does not force a logout")

	// Backend confirms.
	svc = NewAuthService(&fakeSessionManager{authenticated: true, remoteValid: true}, nil, zap.NewNop())
	assert.NoError(t, svc.RemoteValidate(ctx))
}
