package hub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ACBRI/veritas.ia/internal/domain"
)

// Conn is one open duplex channel to a client. Implementations must be safe
// for a single writer; the hub guarantees it never writes to the same Conn
// from two goroutines at once.
type Conn interface {
	Send(event domain.Event) error
	Close() error
}

type subscriber struct {
	conn   Conn
	region *domain.BoundingBox // nil means interested in everything
	send   chan domain.Event
	done   chan struct{}
}

// Hub owns the registry of live subscribers and fans report events out to
// the ones whose interest region contains the report location. Registry
// mutations are serialized by a mutex; fan-out iterates a snapshot so a slow
// send never blocks new subscriptions or other subscribers.
type Hub struct {
	logger    *slog.Logger
	heartbeat time.Duration
	buffer    int

	mu     sync.Mutex
	subs   map[Conn]*subscriber
	closed bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(logger *slog.Logger, heartbeat time.Duration, sendBuffer int) *Hub {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	if sendBuffer <= 0 {
		sendBuffer = 32
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		logger:    logger,
		heartbeat: heartbeat,
		buffer:    sendBuffer,
		subs:      make(map[Conn]*subscriber),
		cancel:    cancel,
	}

	h.wg.Add(1)
	go h.heartbeatLoop(ctx)

	return h
}

// Subscribe registers conn with an optional interest region. Subscribing an
// already-registered conn only replaces its region.
func (h *Hub) Subscribe(conn Conn, region *domain.BoundingBox) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	if existing, ok := h.subs[conn]; ok {
		existing.region = region
		h.logger.Debug("subscriber region replaced")
		return
	}

	sub := &subscriber{
		conn:   conn,
		region: region,
		send:   make(chan domain.Event, h.buffer),
		done:   make(chan struct{}),
	}
	h.subs[conn] = sub

	h.wg.Add(1)
	go h.writer(sub)

	h.logger.Info("subscriber connected",
		slog.Bool("has_region", region != nil),
		slog.Int("subscribers", len(h.subs)),
	)
}

// Unsubscribe removes conn from the registry and stops its writer. Calling
// it twice, or with a conn that was never registered, is a no-op.
func (h *Hub) Unsubscribe(conn Conn) {
	h.mu.Lock()
	sub, ok := h.subs[conn]
	if ok {
		delete(h.subs, conn)
		close(sub.done)
	}
	remaining := len(h.subs)
	h.mu.Unlock()

	if ok {
		h.logger.Info("subscriber disconnected", slog.Int("subscribers", remaining))
	}
}

// PublishCreated delivers a new_report event to every subscriber whose
// region contains the report location. Delivery failures are handled by
// removing the dead subscriber; the caller never sees them.
func (h *Hub) PublishCreated(report *domain.Report) {
	h.broadcast(domain.NewReportEvent(report), &report.Coordinates)
}

// PublishConfirmed delivers a confirmation_update event, filtered the same
// way as PublishCreated.
func (h *Hub) PublishConfirmed(report *domain.Report) {
	h.broadcast(domain.NewConfirmationEvent(report), &report.Coordinates)
}

// Len reports the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Shutdown disconnects every subscriber, stops the heartbeat loop, and waits
// for all writers to drain.
func (h *Hub) Shutdown() {
	h.cancel()

	h.mu.Lock()
	h.closed = true
	subs := make([]*subscriber, 0, len(h.subs))
	for conn, sub := range h.subs {
		subs = append(subs, sub)
		delete(h.subs, conn)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		close(sub.done)
		_ = sub.conn.Close()
	}

	h.wg.Wait()
	h.logger.Info("hub stopped", slog.Int("drained", len(subs)))
}

// broadcast fans one event out to matching subscribers. coords == nil means
// unfiltered (heartbeats). The registry lock is held only while snapshotting,
// never across sends.
func (h *Hub) broadcast(event domain.Event, coords *domain.Coordinates) {
	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		if coords != nil && sub.region != nil &&
			!sub.region.Contains(coords.Latitude, coords.Longitude) {
			continue
		}
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		select {
		case sub.send <- event:
		case <-sub.done:
		default:
			// Buffer full: the consumer stopped reading long ago. Treat it
			// like a broken pipe and garbage-collect the subscriber.
			h.logger.Warn("subscriber send buffer full, dropping subscriber")
			h.Unsubscribe(sub.conn)
			_ = sub.conn.Close()
		}
	}
}

// writer is the single goroutine allowed to write to a subscriber's conn,
// which serializes publishes and heartbeats into FIFO frames.
func (h *Hub) writer(sub *subscriber) {
	defer h.wg.Done()

	for {
		select {
		case <-sub.done:
			return
		case event := <-sub.send:
			if err := sub.conn.Send(event); err != nil {
				h.logger.Debug("subscriber send failed, removing",
					slog.Any("error", err),
				)
				h.Unsubscribe(sub.conn)
				_ = sub.conn.Close()
				return
			}
		}
	}
}

func (h *Hub) heartbeatLoop(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.broadcast(domain.NewHeartbeatEvent(), nil)
		}
	}
}
