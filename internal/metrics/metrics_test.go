package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.RecordPageView("/", 200)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.PageViews.WithLabelValues("/", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PageViews.WithLabelValues("/", "200")))
}

func TestRecordSearch(t *testing.T) {
	m := New()
	m.RecordSearch(false, 32)
	m.RecordSearch(true, 3)
	m.RecordSearch(true, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Searches.WithLabelValues("true")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchResults))
}

func TestRecordRenderAndContact(t *testing.T) {
	m := New()
	m.RecordRender("ok")
	m.RecordRender("ok")
	m.RecordRender("missing")
	m.RecordContact("accepted")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PostRenders.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostRenders.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues("accepted")))
}

func TestStreamStarted(t *testing.T) {
	m := New()
	doneA := m.StreamStarted(StreamTypewriter)
	doneB := m.StreamStarted(StreamTypewriter)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ActiveStreams.WithLabelValues(StreamTypewriter)))

	doneA()
	doneB()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ActiveStreams.WithLabelValues(StreamTypewriter)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordPageView("/", 200)
		m.RecordSearch(true, 1)
		m.RecordRender("ok")
		m.RecordContact("accepted")
		m.StreamStarted(StreamReveal)()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordPageView("/skills", 200)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `devfolio_page_views_total{route="/skills",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
