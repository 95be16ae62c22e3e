package session

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

type fakeAuthAPI struct {
	loginResp  *models.LoginResponse
	loginErr   error
	valid      bool
	validErr   error
	validCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) ValidateToken(ctx context.Context, token string) (bool, error) {
	f.validCalls++
	return f.valid, f.validErr
}

func newManager(t *testing.T, api *fakeAuthAPI, requireExp bool) (*Manager, Store) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return NewManager(store, api, zap.NewNop(), requireExp), store
}

func TestManagerLoginStoresSession(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	api := &fakeAuthAPI{loginResp: &models.LoginResponse{Token: token, Username: "admin", Role: "admin"}}
	mgr, store := newManager(t, api, false)
	ctx := context.Background()

	info, err := mgr.Login(ctx, models.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, info.Authenticated)
	assert.True(t, info.Admin)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, "admin", sess.Username)
	assert.True(t, mgr.IsAuthenticated(ctx))
	assert.True(t, mgr.IsAdmin(ctx))
}

func TestManagerLoginRecoversClaimsFromToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username": "gabriel",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	// The response body omits username and role; both come from the payload.
	api := &fakeAuthAPI{loginResp: &models.LoginResponse{Token: token}}
	mgr, _ := newManager(t, api, false)
	ctx := context.Background()

	info, err := mgr.Login(ctx, models.LoginRequest{Username: "gabriel", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "gabriel", info.Username)
	assert.Equal(t, "admin", info.Role)
}

func TestManagerLoginOpaqueToken(t *testing.T) {
	// An undecodable token still logs in when the body carries the claims;
	// decoding must not fail the login.
	api := &fakeAuthAPI{loginResp: &models.LoginResponse{Token: "opaque-token", Username: "admin", Role: "admin"}}
	mgr, _ := newManager(t, api, false)
	ctx := context.Background()

	info, err := mgr.Login(ctx, models.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
	// But without a decodable token the session cannot prove validity.
	assert.False(t, mgr.IsAuthenticated(ctx))
}

func TestManagerLoginPropagatesErrorKinds(t *testing.T) {
	api := &fakeAuthAPI{loginErr: appErrors.Clone(appErrors.ErrInvalidCredentials, "")}
	mgr, _ := newManager(t, api, false)

	_, err := mgr.Login(context.Background(), models.LoginRequest{Username: "x", Password: "y"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidCredentials))
}

func TestManagerIsAuthenticatedIgnoresStaleFlag(t *testing.T) {
	mgr, store := newManager(t, &fakeAuthAPI{}, false)
	ctx := context.Background()

	expiredToken := signToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, store.Save(ctx, models.Session{
		Authenticated: true,
		Token:         expiredToken,
		Username:      "admin",
		Role:          "admin",
	}))

	// The stored flag says authenticated; the expired token wins.
	assert.False(t, mgr.IsAuthenticated(ctx))
	assert.False(t, mgr.IsAdmin(ctx))

	// A flag without any token is equally inconsistent.
	require.NoError(t, store.Save(ctx, models.Session{Authenticated: true}))
	assert.False(t, mgr.IsAuthenticated(ctx))
}

func TestManagerMissingExpPolicy(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"username": "admin", "role": "admin"})
	ctx := context.Background()

	permissive, store := newManager(t, &fakeAuthAPI{}, false)
	require.NoError(t, store.Save(ctx, models.Session{Authenticated: true, Token: token, Role: "admin"}))
	assert.True(t, permissive.IsAuthenticated(ctx))

	strict, strictStore := newManager(t, &fakeAuthAPI{}, true)
	require.NoError(t, strictStore.Save(ctx, models.Session{Authenticated: true, Token: token, Role: "admin"}))
	assert.False(t, strict.IsAuthenticated(ctx))
}

func TestManagerLogoutClearsEverything(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	api := &fakeAuthAPI{loginResp: &models.LoginResponse{Token: token, Username: "admin", Role: "admin"}}
	mgr, store := newManager(t, api, false)
	ctx := context.Background()

	_, err := mgr.Login(ctx, models.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)

	mgr.Logout(ctx)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, sess.IsEmpty())
	assert.False(t, mgr.IsAuthenticated(ctx))

	// Logout on an already-empty session is a no-op.
	mgr.Logout(ctx)
}

func TestManagerAuthorize(t *testing.T) {
	mgr, store := newManager(t, &fakeAuthAPI{}, false)
	ctx := context.Background()

	// No token: headers pass through untouched.
	h := mgr.Authorize(ctx, http.Header{"Accept": []string{"application/json"}})
	assert.Empty(t, h.Get("Authorization"))

	require.NoError(t, store.Save(ctx, models.Session{Token: "tok"}))
	h = mgr.Authorize(ctx, nil)
	assert.Equal(t, "Bearer tok", h.Get("Authorization"))
}

func TestManagerRemoteValidateLeavesSessionAlone(t *testing.T) {
	api := &fakeAuthAPI{valid: false}
	mgr, store := newManager(t, api, false)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{Token: "tok"}))

	valid, err := mgr.RemoteValidate(ctx)
	require.NoError(t, err)
	assert.False(t, valid)

	// The rejection is reported, not acted on: the session survives until
	// the caller decides to log out.
	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
}

func TestManagerRemoteValidateWithoutToken(t *testing.T) {
	api := &fakeAuthAPI{valid: true}
	mgr, _ := newManager(t, api, false)

	valid, err := mgr.RemoteValidate(context.Background())
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Zero(t, api.validCalls)
}
