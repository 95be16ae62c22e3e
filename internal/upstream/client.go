// Package upstream implements the HTTP client for the remote course and
// enrollment backend. The backend owns all data; the gateway only translates
// its status classes into the portal error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
)

// Client talks to the remote course service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New constructs a Client. The timeout bounds every round trip; the upstream
// can be slow to cold-start and callers must not wait on it indefinitely.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Login exchanges credentials for a token. Client-error statuses mean the
// credentials were rejected; server errors and transport failures are
// reported as distinct kinds so the caller can decide whether to retry.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var out models.LoginResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "malformed login response")
		}
		if out.Token == "" {
			return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, "login response contains no token")
		}
		return &out, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, serverMessage(body, "invalid username or password"))
	default:
		return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, "")
	}
}

// ValidateToken asks the backend whether it still accepts the token. A
// definitive rejection returns (false, nil); only reachability problems
// return an error, so callers can tell "rejected" from "unknown".
func (c *Client) ValidateToken(ctx context.Context, token string) (bool, error) {
	resp, _, err := c.do(ctx, http.MethodGet, "/auth/validate", token, nil)
	if err != nil {
		return false, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return false, nil
	default:
		return false, appErrors.Clone(appErrors.ErrServiceUnavailable, "")
	}
}

// ListCourses fetches the public course snapshot.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	resp, body, err := c.do(ctx, http.MethodGet, "/curso", "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, "failed to load courses")
	}

	var courses []models.Course
	if err := json.Unmarshal(body, &courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "malformed course list")
	}
	return courses, nil
}

// SubmitEnrollment posts a normalized enrollment. The backend holds the
// authoritative capacity decision: a 409 after a passing local check means
// the seat race was lost, not that the draft was malformed.
func (c *Client) SubmitEnrollment(ctx context.Context, payload models.SubmissionPayload) error {
	resp, body, err := c.do(ctx, http.MethodPost, "/aluno/inscricao", "", payload)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return appErrors.Clone(appErrors.ErrSubmissionConflict, "")
	case resp.StatusCode == http.StatusBadRequest:
		return appErrors.Clone(appErrors.ErrSubmissionRejected, serverMessage(body, ""))
	case resp.StatusCode == http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrSessionExpired, "")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return appErrors.Clone(appErrors.ErrSubmissionRejected, serverMessage(body, ""))
	default:
		return appErrors.Clone(appErrors.ErrServiceUnavailable, "")
	}
}

// CreateCourse registers a new course. Admin only.
func (c *Client) CreateCourse(ctx context.Context, token string, req models.CreateCourseRequest) (*models.Course, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/curso", token, req)
	if err != nil {
		return nil, err
	}
	if err := c.adminStatus(resp, body); err != nil {
		return nil, err
	}

	var course models.Course
	if err := json.Unmarshal(body, &course); err != nil {
		// Some deployments answer creation with an empty body; fall back to
		// echoing the request.
		course = models.Course{Name: req.Name, Instructor: req.Instructor, StartDate: req.StartDate, Hours: req.Hours, Certificate: req.Certificate, TotalSeats: req.TotalSeats}
	}
	return &course, nil
}

// DeleteCourse removes a course. Admin only.
func (c *Client) DeleteCourse(ctx context.Context, token string, id int64) error {
	resp, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/curso/%d", id), token, nil)
	if err != nil {
		return err
	}
	return c.adminStatus(resp, body)
}

// ListEnrollments fetches the detailed enrollment roster. Admin only.
func (c *Client) ListEnrollments(ctx context.Context, token string) ([]models.EnrollmentRecord, error) {
	resp, body, err := c.do(ctx, http.MethodGet, "/admin/inscricoes", token, nil)
	if err != nil {
		return nil, err
	}
	if err := c.adminStatus(resp, body); err != nil {
		return nil, err
	}

	var records []models.EnrollmentRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "malformed enrollment list")
	}
	return records, nil
}

// DeleteEnrollment removes an enrollment record. Admin only.
func (c *Client) DeleteEnrollment(ctx context.Context, token string, id int64) error {
	resp, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/inscricoes/%d", id), token, nil)
	if err != nil {
		return err
	}
	return c.adminStatus(resp, body)
}

// RequestReport asks the backend to build a report and returns its response
// verbatim; report formatting is entirely upstream's concern.
func (c *Client) RequestReport(ctx context.Context, token string, payload json.RawMessage) (json.RawMessage, error) {
	var body interface{}
	if len(payload) > 0 {
		body = payload
	}
	resp, respBody, err := c.do(ctx, http.MethodPost, "/admin/relatorio", token, body)
	if err != nil {
		return nil, err
	}
	if err := c.adminStatus(resp, respBody); err != nil {
		return nil, err
	}
	if len(respBody) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(respBody), nil
}

// adminStatus maps protected-endpoint statuses: a 401 signals session
// invalidity and is surfaced as such, never silently swallowed.
func (c *Client) adminStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrSessionExpired, "")
	case resp.StatusCode == http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrForbidden, "")
	case resp.StatusCode == http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, "")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return appErrors.Clone(appErrors.ErrSubmissionRejected, serverMessage(body, ""))
	default:
		return appErrors.Clone(appErrors.ErrServiceUnavailable, "")
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, payload interface{}) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, nil, transportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		return nil, nil, transportError(readErr)
	}

	c.logger.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	return resp, body, nil
}

// transportError distinguishes a bounded-wait timeout from an unreachable
// network: the former surfaces as SERVICE_UNAVAILABLE, the latter as
// NETWORK_FAILURE, and neither ever means "not authenticated".
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "course service timed out")
	}
	return appErrors.Wrap(err, appErrors.ErrNetworkFailure.Code, appErrors.ErrNetworkFailure.Status, appErrors.ErrNetworkFailure.Message)
}

// serverMessage extracts the backend's message/error field when present.
func serverMessage(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if len(body) < 100 {
		return strings.TrimSpace(string(body))
	}
	return fallback
}
