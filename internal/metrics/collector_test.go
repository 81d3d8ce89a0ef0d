package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSubmission(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.RecordSubmission(OutcomeOK, 3)
	c.RecordSubmission(OutcomeOK, 5)
	c.RecordSubmission(OutcomeEmptyTokens, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.submissions.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.submissions.WithLabelValues(OutcomeEmptyTokens)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.tokens))
}

func TestSetHistorySize(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.SetHistorySize(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(c.historySize))
}

func TestCollectorsAreIndependent(t *testing.T) {
	t.Parallel()
	a, b := NewCollector(), NewCollector()
	a.RecordSubmission(OutcomeOK, 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.submissions.WithLabelValues(OutcomeOK)))
}

func TestHandlerExposesSeries(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.RecordSubmission(OutcomeMissingInput, 0)
	c.SetHistorySize(1)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `tokplot_submissions_total{outcome="missing_input"} 1`)
	assert.Contains(t, body, "tokplot_history_size 1")
	assert.Contains(t, body, "go_goroutines")
}
