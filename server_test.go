package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/blog"
	"github.com/Zachkp/devfolio/internal/config"
	"github.com/Zachkp/devfolio/internal/cycler"
	"github.com/Zachkp/devfolio/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type logCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *logCapture) entries(t *testing.T) []map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []map[string]any
	for _, line := range bytes.Split(c.buf.Bytes(), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		out = append(out, entry)
	}
	return out
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Server.Mode = "test"
	cfg.Hero.TypeDelay = time.Millisecond
	cfg.Hero.EraseDelay = time.Millisecond
	cfg.Hero.HoldDelay = 5 * time.Millisecond
	cfg.Typewriter.TypeDelay = time.Millisecond
	cfg.Typewriter.EraseDelay = time.Millisecond
	cfg.Typewriter.HoldDelay = 5 * time.Millisecond
	cfg.Reveal.Duration = 30 * time.Millisecond
	cfg.Reveal.FrameInterval = time.Millisecond
	cfg.Carousel.Interval = 5 * time.Millisecond
	return cfg
}

type testEnv struct {
	srv    *Server
	router *gin.Engine
	logs   *logCapture
}

func newTestEnv(t *testing.T, opts ...ServerOption) *testEnv {
	t.Helper()
	logs := &logCapture{}
	logger := pslog.NewWithOptions(logs, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)

	srv, err := NewServer(ctx, testConfig(), opts...)
	require.NoError(t, err)
	r, err := srv.Routes()
	require.NoError(t, err)
	return &testEnv{srv: srv, router: r, logs: logs}
}

func (e *testEnv) get(path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestNewServer_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Mode = "loud"
	_, err := NewServer(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Content.Dir = "/does/not/exist"
	_, err = NewServer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestSectionPages(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		path string
		want string
	}{
		{"/", "Hello, I'm"},
		{"/about", "About Me"},
		{"/skills", "Backend Technologies"},
		{"/skills", "Soft Skills"},
		{"/portfolio", "Universal Rate Server"},
		{"/timeline", "Lead Full Stack Developer"},
		{"/videoblog", `data-carousel="/videoblog/slides/stream"`},
		{"/contact", `hx-post="/contact"`},
		{"/technicalblog", "Found 32 articles"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := env.get(tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHomeHasAllSections(t *testing.T) {
	env := newTestEnv(t)
	body := env.get("/").Body.String()
	for _, id := range []string{"hero", "about", "roles", "portfolio", "timeline", "skills", "contact"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `data-typewriter="/typewriter/hero/stream"`)
	assert.Contains(t, body, `data-reveal="backend" data-reveal-target="90"`)
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found.")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusOK, env.get("/static/site.js").Code)
	assert.Equal(t, http.StatusOK, env.get("/static/site.css").Code)
	for _, s := range Slides {
		assert.Equal(t, http.StatusOK, env.get(s.Image).Code, s.Image)
	}
}

func TestPost(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/post/docker")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<h1 id="docker-for-developers" class="`)
	assert.Contains(t, body, "<table")
	assert.NotContains(t, body, "not available")

	w = env.get("/post/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post not found.")

	// Listed in the catalog without a markdown file.
	w = env.get("/post/oml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This article is not available right now.")

	m := env.srv.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostRenders.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostRenders.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostRenders.WithLabelValues("missing")))
}

func TestSkillLinksResolve(t *testing.T) {
	env := newTestEnv(t)
	for _, g := range SkillGroups {
		for _, s := range g.Skills {
			id := strings.TrimPrefix(s.Href, "/post/")
			_, ok := env.srv.catalog.Lookup(id)
			assert.True(t, ok, "skill %s links to unknown post %s", s.Name, id)
		}
	}
}

func decodePosts(t *testing.T, w *httptest.ResponseRecorder) postsResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var resp postsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAPIPosts(t *testing.T) {
	env := newTestEnv(t)

	all := decodePosts(t, env.get("/api/posts"))
	assert.Equal(t, 32, all.Total)
	assert.Equal(t, 32, all.Count)
	assert.Equal(t, env.srv.catalog.Tags(), all.Tags)

	upper := decodePosts(t, env.get("/api/posts?q=JAVA"))
	lower := decodePosts(t, env.get("/api/posts?q=java"))
	assert.Equal(t, lower.Posts, upper.Posts)
	assert.NotEmpty(t, lower.Posts)
	for _, p := range lower.Posts {
		assert.True(t, blog.Matches(p, "java"), p.ID)
	}

	docker := decodePosts(t, env.get("/api/posts?tag=Docker"))
	require.NotEmpty(t, docker.Posts)
	for _, p := range docker.Posts {
		assert.True(t, blog.HasTag(p, "Docker"), p.ID)
	}
	assert.Equal(t, "Docker", docker.Query.Tag)

	none := decodePosts(t, env.get("/api/posts?q=zzzz-nothing"))
	assert.Equal(t, 0, none.Count)
	assert.NotNil(t, none.Posts)
	assert.Equal(t, 32, none.Total)
}

func TestTechnicalBlogResultsFragment(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/technicalblog/results?q=zzzz-nothing")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Found 0 articles")
	assert.Contains(t, body, "No articles match your search.")
	assert.NotContains(t, body, "<html")

	want := env.srv.catalog.Search(blog.Query{Text: "docker"})
	w = env.get("/technicalblog/results?q=docker")
	assert.Contains(t, w.Body.String(), want.Summary())
	for _, p := range want.Posts {
		assert.Contains(t, w.Body.String(), `href="/post/`+p.ID+`"`)
	}
}

func TestTechnicalBlogSearchCombinesTextAndTag(t *testing.T) {
	env := newTestEnv(t)
	res := decodePosts(t, env.get("/api/posts?q=compose&tag=Docker"))
	require.NotEmpty(t, res.Posts)
	for _, p := range res.Posts {
		assert.True(t, blog.Matches(p, "compose"), p.ID)
		assert.True(t, blog.HasTag(p, "Docker"), p.ID)
	}
	assert.Equal(t, blog.Query{Text: "compose", Tag: "Docker"}, res.Query)
}

func TestTechnicalBlogSearchesEveryKeystroke(t *testing.T) {
	env := newTestEnv(t)
	body := env.get("/technicalblog").Body.String()
	assert.Contains(t, body, `hx-trigger="input changed from:input[name=q], submit"`)
	assert.NotContains(t, body, "delay:")
}

func TestTechnicalBlogTagChips(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/technicalblog?tag=Docker")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, ">All</a>")
	for _, tag := range env.srv.catalog.Tags() {
		assert.Contains(t, body, ">"+htmlText(tag)+"</a>")
	}
}

// htmlText mirrors the html/template escaping of text nodes.
func htmlText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;", "+", "&#43;")
	return r.Replace(s)
}

type recordingContact struct {
	mu    sync.Mutex
	forms []ContactForm
	err   error
}

func (r *recordingContact) HandleContact(_ context.Context, f ContactForm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, f)
	return r.err
}

func TestContactSubmit(t *testing.T) {
	rec := &recordingContact{}
	env := newTestEnv(t, WithContactHandler(rec))

	w := env.postForm("/contact", url.Values{
		"name":    {"  Ana  "},
		"email":   {"ana@example.com"},
		"message": {"Hello there"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for your message!")
	require.Len(t, rec.forms, 1)
	assert.Equal(t, "Ana", rec.forms[0].Name)

	w = env.postForm("/contact", url.Values{
		"name":    {"Ana"},
		"email":   {"not-an-email"},
		"message": {"Hello"},
	})
	assert.Contains(t, w.Body.String(), "valid email address")

	w = env.postForm("/contact", url.Values{
		"name":    {"   "},
		"email":   {"ana@example.com"},
		"message": {"Hello"},
	})
	assert.Contains(t, w.Body.String(), "valid email address")
	assert.Len(t, rec.forms, 1)

	m := env.srv.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues("invalid")))
}

func TestContactHandlerFailure(t *testing.T) {
	env := newTestEnv(t, WithContactHandler(&recordingContact{err: errors.New("smtp down")}))
	w := env.postForm("/contact", url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"message": {"Hello"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "there was an error sending your message")
}

func TestLogContactHandler(t *testing.T) {
	logs := &logCapture{}
	logger := pslog.NewWithOptions(logs, pslog.Options{Mode: pslog.ModeStructured, NoColor: true, MinLevel: pslog.InfoLevel})
	ctx := pslog.ContextWithLogger(context.Background(), logger)

	require.NoError(t, logContactHandler{}.HandleContact(ctx, ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hi"}))
	entries := logs.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0]["name"])
	assert.EqualValues(t, 2, entries[0]["message_len"])
}

func TestPageViewMetrics(t *testing.T) {
	env := newTestEnv(t)
	env.get("/skills")
	env.get("/skills")
	env.get("/skills", "DNT", "1")
	env.get("/static/site.css")
	env.get("/health")
	env.get("/missing")

	m := env.srv.metrics
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/skills", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageViews.WithLabelValues("unmatched", "404")))

	w := env.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `devfolio_page_views_total{route="/skills",status="200"} 2`)
	assert.NotContains(t, w.Body.String(), `route="/health"`)
}

func TestRequestLoggingHashesVisitor(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/about?x=1", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	env.router.ServeHTTP(httptest.NewRecorder(), req)

	var found map[string]any
	for _, e := range env.logs.entries(t) {
		if e["path"] == "/about?x=1" {
			found = e
		}
	}
	require.NotNil(t, found, "no request log entry")
	assert.EqualValues(t, 200, found["status"])
	assert.Equal(t, "GET", found["method"])
	visitor, _ := found["visitor"].(string)
	assert.Len(t, visitor, 16)
	assert.NotContains(t, visitor, "203.0.113.7")
}

type sseEvent struct {
	name string
	data string
}

// readEvents reads n server-sent events from body.
func readEvents(t *testing.T, body io.Reader, n int) []sseEvent {
	t.Helper()
	var (
		out []sseEvent
		cur sseEvent
	)
	sc := bufio.NewScanner(body)
	for len(out) < n && sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			cur.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "":
			if cur.name != "" || cur.data != "" {
				out = append(out, cur)
			}
			cur = sseEvent{}
		}
	}
	require.Len(t, out, n)
	return out
}

// startServer serves env over a real listener. The server is closed after
// every stream opened by the test has been torn down.
func startServer(t *testing.T, env *testEnv) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(env.router)
	t.Cleanup(ts.Close)
	return ts
}

func openStream(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestTypewriterStream(t *testing.T) {
	env := newTestEnv(t)
	ts := startServer(t, env)

	resp := openStream(t, ts, "/typewriter/hero/stream")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := readEvents(t, resp.Body, 6)
	word := HeroRoles[0]
	for i, ev := range events {
		assert.Equal(t, "frame", ev.name)
		var f cycler.Frame
		require.NoError(t, json.Unmarshal([]byte(ev.data), &f))
		assert.Equal(t, word[:i], f.Text)
		assert.Equal(t, 0, f.Index)
	}
}

func TestTypewriterStream_UnknownName(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/typewriter/nope/stream")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSlidesStream(t *testing.T) {
	env := newTestEnv(t)
	ts := startServer(t, env)

	resp := openStream(t, ts, "/videoblog/slides/stream")
	events := readEvents(t, resp.Body, len(Slides)+1)
	for i, ev := range events {
		assert.Equal(t, "slide", ev.name)
		var s slideEvent
		require.NoError(t, json.Unmarshal([]byte(ev.data), &s))
		assert.Equal(t, i%len(Slides), s.Index)
		assert.Equal(t, Slides[s.Index].Image, s.Image)
	}
}

func TestRevealSocket(t *testing.T) {
	env := newTestEnv(t)
	ts := startServer(t, env)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/reveal/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]any{"region": "backend", "visible": true}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	prev := -1
	for {
		var msg revealMessage
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "backend", msg.Region)
		assert.True(t, msg.Visible)
		assert.Greater(t, msg.Value, prev)
		assert.LessOrEqual(t, msg.Value, 90)
		prev = msg.Value
		if msg.Value == 90 {
			break
		}
	}

	// Once mode: scrolling away does not hide a revealed region.
	require.NoError(t, conn.WriteJSON(map[string]any{"region": "backend", "visible": false}))
	require.NoError(t, conn.WriteJSON(map[string]any{"region": "about", "visible": true}))
	var msg revealMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "about", msg.Region)
	assert.True(t, msg.Visible)
}

func TestRevealSocket_RegionsPastCapAreShown(t *testing.T) {
	env := newTestEnv(t)
	ts := startServer(t, env)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/reveal/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	const regions = maxRevealRegions + 1
	for i := 0; i < regions; i++ {
		region := fmt.Sprintf("r%d", i)
		require.NoError(t, conn.WriteJSON(map[string]any{"region": region, "visible": true}))
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	shown := map[string]bool{}
	for len(shown) < regions {
		var msg revealMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Visible {
			shown[msg.Region] = true
		}
	}
	assert.True(t, shown[fmt.Sprintf("r%d", maxRevealRegions)])
}

func TestRevealSocket_PeerGoneReleasesStream(t *testing.T) {
	env := newTestEnv(t)
	ts := startServer(t, env)
	gauge := env.srv.metrics.ActiveStreams.WithLabelValues(metrics.StreamReveal)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/reveal/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]any{"region": "backend", "visible": true}))
	var msg revealMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, float64(1), testutil.ToFloat64(gauge))

	require.NoError(t, conn.UnderlyingConn().Close())
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(gauge) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRegionTarget(t *testing.T) {
	assert.Equal(t, 90, regionTarget("backend"))
	assert.Equal(t, 80, regionTarget("frontend"))
	assert.Equal(t, 70, regionTarget("database"))
	assert.Equal(t, 100, regionTarget("about"))
}

func TestTracked(t *testing.T) {
	assert.True(t, tracked("/"))
	assert.True(t, tracked("/post/docker"))
	assert.False(t, tracked("/static/site.js"))
	assert.False(t, tracked("/typewriter/hero/stream"))
	assert.False(t, tracked("/reveal/ws"))
}
