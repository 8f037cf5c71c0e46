package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/service"
)

func TestWithTraceID_PropagatesIncomingHeader(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	var seen bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.True(t, seen)
	assert.Equal(t, "trace-abc", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_MintsUUIDWhenAbsent(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	minted := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, minted)

	_, err := uuid.Parse(minted)
	assert.NoError(t, err)
}
