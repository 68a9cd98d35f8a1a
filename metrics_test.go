package pressfront

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareRecordsFinalStatus(t *testing.T) {
	m := NewMetrics()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/gone", func(c echo.Context) error { return echo.NewHTTPError(http.StatusGone) })

	for _, target := range []string{"/ok", "/ok", "/gone", "/unknown"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues("/ok", "GET", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("/gone", "GET", "410")), 0)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(m.latency), 2)
}

func TestInstrumentTransportCountsUpstreamCalls(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	m := NewMetrics()
	hc := &http.Client{Transport: m.InstrumentTransport(nil)}
	for _, p := range []string{"/", "/", "/fail"} {
		resp, err := hc.Get(upstream.URL + p)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("200", "get")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("503", "get")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.upstreamInFlight), 0)
}
