package main

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/metrics"
	"github.com/Zachkp/devfolio/internal/reveal"
)

// maxRevealRegions bounds the gates one connection may open.
const maxRevealRegions = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// revealMessage is what the server sends for every ramp frame.
type revealMessage struct {
	Region  string `json:"region"`
	Visible bool   `json:"visible"`
	Value   int    `json:"value"`
}

// regionTarget is the value a region ramps to: the skill percentage for a
// skill bar, 100 for anything else.
func regionTarget(region string) int {
	for _, g := range SkillGroups {
		if g.Region == region {
			return g.Percentage
		}
	}
	return 100
}

// revealSocket runs one scroll-reveal gate per region the page reports. The
// browser sends {region, visible} whenever an observed element crosses the
// viewport; the server answers with ramp frames for that region.
func (s *Server) revealSocket(c *gin.Context) {
	logger := pslog.Ctx(c.Request.Context())
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("reveal websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	done := s.metrics.StreamStarted(metrics.StreamReveal)
	defer done()

	ctx, cancel := context.WithCancel(c.Request.Context())
	mux := reveal.NewMux()
	var wg sync.WaitGroup
	defer func() {
		cancel()
		mux.Close()
		wg.Wait()
	}()

	var writeMu sync.Mutex
	write := func(msg revealMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	base := s.revealOptions()
	started := make(map[string]bool)
	for {
		var ev reveal.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("reveal websocket read", "error", err)
			}
			return
		}
		if ev.Region == "" {
			continue
		}

		if !started[ev.Region] {
			if len(started) >= maxRevealRegions {
				// No gate for this region: show it rather than leave it hidden.
				full := revealMessage{Region: ev.Region, Visible: true, Value: regionTarget(ev.Region)}
				if err := write(full); err != nil {
					logger.Debug("reveal fallback write", "region", ev.Region, "error", err)
					return
				}
				continue
			}
			started[ev.Region] = true
			opts := base
			opts.Ramp.Target = regionTarget(ev.Region)
			region := ev.Region

			wg.Add(1)
			go func() {
				defer wg.Done()
				err := reveal.Run(ctx, mux, region, opts, func(st reveal.State) error {
					return write(revealMessage{Region: region, Visible: st.Visible, Value: st.Value})
				})
				if !endOfStream(err) {
					logger.Debug("reveal gate stopped", "region", region, "error", err)
					cancel()
					// Unblocks ReadJSON when the peer is gone.
					conn.Close()
				}
			}()
		}
		mux.Publish(ev)
	}
}
