package response

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "estimate-srv/pkg/errors"
)

type captureDiscord struct {
	descriptions chan string
}

func (d *captureDiscord) SendMessage(context.Context, string) error { return nil }

func (d *captureDiscord) SendError(_ context.Context, _ string, description string, _ error) error {
	d.descriptions <- description
	return nil
}

func (d *captureDiscord) SendInfo(context.Context, string, string) error { return nil }

func newTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

func TestErrorKeepsHTTPErrorStatus(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/api/v1/estimates/u1")

	Error(c, pkgErrors.NewHTTPError(404, "Estimation result not found"), nil)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Estimation result not found")
}

func TestErrorInternalReportsSnapshot(t *testing.T) {
	d := &captureDiscord{descriptions: make(chan string, 1)}
	c, w := newTestContext(http.MethodPost, "/webhook/kakao")

	Error(c, errors.New("redis: connection refused"), d)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Gin reuses the context for the next request as soon as the handler
	// returns. The report must not read it after that point.
	c.Request = nil

	select {
	case desc := <-d.descriptions:
		assert.Equal(t, "POST /webhook/kakao", desc)
	case <-time.After(time.Second):
		require.Fail(t, "error report never sent")
	}
}

func TestPanicErrorReports(t *testing.T) {
	d := &captureDiscord{descriptions: make(chan string, 1)}
	c, w := newTestContext(http.MethodGet, "/health")

	PanicError(c, "boom", d)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	select {
	case desc := <-d.descriptions:
		assert.Equal(t, "GET /health", desc)
	case <-time.After(time.Second):
		require.Fail(t, "panic report never sent")
	}
}
