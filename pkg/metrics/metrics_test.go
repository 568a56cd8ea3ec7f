package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/campaigns/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/campaigns/{id}", "404")))
}

func TestObserveDonation(t *testing.T) {
	m := New()

	m.ObserveDonation("PKR", 250)
	m.ObserveDonation("PKR", 100.5)
	m.ObserveDonation("USD", 10)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.donations.WithLabelValues("PKR")))
	assert.Equal(t, 350.5, testutil.ToFloat64(m.donated.WithLabelValues("PKR")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.donated.WithLabelValues("USD")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveDonation("USD", 5)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "globalfund_donations_recorded_total"))
}
