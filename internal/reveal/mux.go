package reveal

import (
	"context"
	"fmt"
	"sync"
)

// Event is a visibility change reported for one region.
type Event struct {
	Region  string `json:"region"`
	Visible bool   `json:"visible"`
}

// Mux is an Observer fed from a single event stream, such as one browser
// connection reporting every region on a page. Visibility is latest-wins:
// a slow subscriber sees the newest value, not every intermediate one.
type Mux struct {
	mu      sync.Mutex
	subs    map[string]chan bool
	pending map[string]bool
	closed  bool
	done    chan struct{}
}

// NewMux returns an open Mux.
func NewMux() *Mux {
	return &Mux{
		subs:    make(map[string]chan bool),
		pending: make(map[string]bool),
		done:    make(chan struct{}),
	}
}

// Observe subscribes to region. A region has at most one subscriber. The
// channel closes when ctx is done or the Mux is closed.
func (m *Mux) Observe(ctx context.Context, region string) (<-chan bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrUnobservable
	}
	if _, ok := m.subs[region]; ok {
		return nil, fmt.Errorf("reveal: region %q already observed", region)
	}

	ch := make(chan bool, 1)
	if v, ok := m.pending[region]; ok {
		ch <- v
		delete(m.pending, region)
	}
	m.subs[region] = ch

	go func() {
		select {
		case <-ctx.Done():
		case <-m.done:
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if cur, ok := m.subs[region]; ok && cur == ch {
			delete(m.subs, region)
			close(ch)
		}
	}()
	return ch, nil
}

// Publish delivers ev to the region's subscriber, replacing any value it has
// not consumed yet. Events for regions nobody observes yet are kept until
// they are. It reports whether a subscriber received the event.
func (m *Mux) Publish(ev Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	ch, ok := m.subs[ev.Region]
	if !ok {
		m.pending[ev.Region] = ev.Visible
		return false
	}
	select {
	case ch <- ev.Visible:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- ev.Visible
	}
	return true
}

// Observed reports whether region currently has a subscriber.
func (m *Mux) Observed(region string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.subs[region]
	return ok
}

// Close ends every subscription.
func (m *Mux) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
	for region, ch := range m.subs {
		close(ch)
		delete(m.subs, region)
	}
}
