// tracking.go - privacy-conscious request accounting
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/metrics"
)

// untrackedPrefixes are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/favicon",
	"/metrics",
	"/health",
	"/api/",
	"/reveal/",
	"/typewriter/",
	"/videoblog/slides/",
}

// visitorHasher hashes client addresses so logs never carry a raw IP. The salt
// is per process, so hashes are stable for one run and useless afterwards.
type visitorHasher struct {
	salt string
}

func newVisitorHasher() *visitorHasher {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("reading random salt: " + err.Error())
	}
	return &visitorHasher{salt: hex.EncodeToString(b)}
}

func (h *visitorHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// pageViewMiddleware counts page views per route. Requests with DNT: 1 are
// served but never counted.
func pageViewMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !tracked(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordPageView(route, c.Writer.Status())
	}
}

// requestLogging attaches the base logger to each request context and logs one
// line per request once it completes.
func requestLogging(base pslog.Logger, hasher *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := base.With("visitor", hasher.hash(c.ClientIP()))
		c.Request = c.Request.WithContext(pslog.ContextWithLogger(c.Request.Context(), logger))

		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		logger.Info("http request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		logger.Debug("http request details", "ua", c.Request.UserAgent())
		if len(c.Errors) > 0 {
			logger.Error("http request errors", "errors", c.Errors.String())
		}
	}
}
