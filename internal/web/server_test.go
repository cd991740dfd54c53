package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/web"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	err  error
	sent []contact.Submission
}

func (r *recordingSubmitter) Submit(_ context.Context, submission contact.Submission) error {
	r.sent = append(r.sent, submission)

	return r.err
}

func newServer(t *testing.T, submitter contact.Submitter) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server, err := web.New(web.Opts{
		ListenAddr:      "127.0.0.1:0",
		Version:         "1.2.3",
		Content:         content.Default(),
		Submitter:       submitter,
		SendTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	})
	require.NoError(t, err)

	return server.Handler()
}

func postContact(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Sam"},
		"email":   {"sam@example.com"},
		"subject": {"Hello"},
		"message": {"Let's work together"},
	}
}

func TestIndex(t *testing.T) {
	handler := newServer(t, nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	for _, id := range []string{"home", "about", "projects", "skills", "contact"} {
		require.Contains(t, body, `id="`+id+`"`)
	}
	require.Contains(t, body, `data-section="home" class="active"`)
	require.NotContains(t, body, `data-section="about" class="active"`)
	require.Contains(t, body, "<strong>React</strong>")
	require.Contains(t, body, "Alex Johnson")
	require.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
}

func TestIndexScrollScriptMatchesTracker(t *testing.T) {
	handler := newServer(t, nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	require.Regexp(t, regexp.MustCompile(`const threshold = \s*`+strconv.Itoa(portfolio.ScrollThreshold)+`\s*;`), body)
	require.Regexp(t, regexp.MustCompile(`const markerOffset = \s*`+strconv.Itoa(portfolio.MarkerOffset)+`\s*;`), body)
	require.Contains(t, body, "window.scrollY > threshold")
	require.Contains(t, body, "window.scrollY + markerOffset")
	require.Contains(t, body, "marker >= s.offsetTop && marker < s.offsetTop + s.offsetHeight")
}

func TestStatic(t *testing.T) {
	handler := newServer(t, nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "#navbar.scrolled")
}

func TestHealth(t *testing.T) {
	handler := newServer(t, nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response web.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "healthy", response.Status)
	require.Equal(t, "1.2.3", response.Version)
}

func TestContactUnwired(t *testing.T) {
	recorder := postContact(t, newServer(t, nil), validForm())

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.Contains(t, recorder.Body.String(), "not connected")
}

func TestContactInvalid(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("message", "   ")

	recorder := postContact(t, newServer(t, submitter), form)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := recorder.Body.String()
	require.Contains(t, body, "email address is invalid")
	require.Contains(t, body, "message is required")
	require.Empty(t, submitter.sent)
}

func TestContactSendFailure(t *testing.T) {
	submitter := &recordingSubmitter{err: errors.New("connection refused")}

	recorder := postContact(t, newServer(t, submitter), validForm())

	require.Equal(t, http.StatusBadGateway, recorder.Code)
	require.Len(t, submitter.sent, 1)
}

func TestContactSent(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := validForm()
	form.Set("name", "  Sam  ")

	recorder := postContact(t, newServer(t, submitter), form)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Thank you")
	require.Len(t, submitter.sent, 1)
	require.Equal(t, "Sam", submitter.sent[0].Name)
	require.Equal(t, "Hello", submitter.sent[0].Subject)
}

func TestRunShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server, err := web.New(web.Opts{
		ListenAddr:      "127.0.0.1:0",
		Content:         content.Default(),
		SendTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- server.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
