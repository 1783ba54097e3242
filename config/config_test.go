package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("UPSTREAM_URL", "https://jsonplaceholder.typicode.com")
	os.Setenv("PORT", "8080")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, 10*time.Second, conf.UpstreamTimeout)
}

func TestNewTimeoutOverride(t *testing.T) {
	os.Setenv("UPSTREAM_TIMEOUT", "3")
	defer os.Unsetenv("UPSTREAM_TIMEOUT")
	conf := New()

	assert.Equal(t, 3*time.Second, conf.UpstreamTimeout)
}

func TestNewTimeoutIgnoresGarbage(t *testing.T) {
	os.Setenv("UPSTREAM_TIMEOUT", "soon")
	defer os.Unsetenv("UPSTREAM_TIMEOUT")
	conf := New()

	assert.Equal(t, 10*time.Second, conf.UpstreamTimeout)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"response": "error it borked, bad request"}`, rr.Body.String())
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}
