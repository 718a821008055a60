package live

import (
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/internal/hub"
)

const writeTimeout = 10 * time.Second

// Registry is the part of the hub the live endpoint needs.
type Registry interface {
	Subscribe(conn hub.Conn, region *domain.BoundingBox)
	Unsubscribe(conn hub.Conn)
}

type Handler struct {
	logger   *slog.Logger
	registry Registry
	upgrader websocket.Upgrader
}

func NewHandler(logger *slog.Logger, registry Registry) *Handler {
	return &Handler{
		logger:   logger,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// reports are anonymous, the live feed is public
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and registers it with the hub, optionally
// scoped to ?bbox=minLat,minLon,maxLat,maxLon. The read loop exists only to
// notice the client going away; all writes happen in the hub.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var region *domain.BoundingBox
	if raw := r.URL.Query().Get("bbox"); raw != "" {
		box, err := domain.ParseBoundingBox(raw)
		if err != nil {
			h.logger.Warn("invalid bbox", slog.String("bbox", raw), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		region = &box
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	conn := newWSConn(ws)
	h.registry.Subscribe(conn, region)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	h.registry.Unsubscribe(conn)
	_ = conn.Close()
}

// wsConn adapts a gorilla connection to hub.Conn. The hub already serializes
// Send calls per subscriber; the mutex only guards Send against a concurrent
// Close during shutdown.
type wsConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{ws: ws}
}

func (c *wsConn) Send(event domain.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(event)
}

func (c *wsConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.Close()
}
