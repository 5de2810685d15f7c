package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/meals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/meals/{id}", "404"))

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/meals/{id}", "404"))
	assert.Equal(t, before+3, after)
}

func TestInstrumentHandler_SkipsMetricsEndpoint(t *testing.T) {
	called := false
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "200"))

	assert.True(t, called)
	assert.Equal(t, before, after)
}

func TestRecordDomainCounters(t *testing.T) {
	created := testutil.ToFloat64(mealsCreated)
	deleted := testutil.ToFloat64(mealsDeleted)
	registered := testutil.ToFloat64(usersRegistered)

	RecordMealCreated()
	RecordMealDeleted()
	RecordUserRegistered()

	assert.Equal(t, created+1, testutil.ToFloat64(mealsCreated))
	assert.Equal(t, deleted+1, testutil.ToFloat64(mealsDeleted))
	assert.Equal(t, registered+1, testutil.ToFloat64(usersRegistered))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordMealCreated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "calorie_keeper_meals_created_total")
}
