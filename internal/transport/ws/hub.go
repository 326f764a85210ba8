// Package ws streams committed domain events to websocket subscribers.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/netscheme-backend/internal/config"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

var (
	subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "netscheme_event_subscribers",
		Help: "Connected event stream subscribers.",
	})
	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netscheme_events_dropped_total",
		Help: "Subscribers disconnected because their send buffer was full.",
	})
)

// Hub fans events out to connected subscribers. Publish never blocks: a
// subscriber that cannot keep up is disconnected.
type Hub struct {
	log      *slog.Logger
	cfg      config.EventsConfig
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

func NewHub(logger *slog.Logger, cfg config.EventsConfig) *Hub {
	if cfg.ClientBuffer <= 0 {
		cfg.ClientBuffer = 64
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}
	h := &Hub{
		log:     logger.With("component", "events"),
		cfg:     cfg,
		clients: make(map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: originChecker(cfg.AllowedOrigins)}
	return h
}

// Publish encodes the event once and queues it for every subscriber.
func (h *Hub) Publish(ctx context.Context, e domain.Event) {
	payload, err := json.Marshal(dto.FromEvent(e))
	if err != nil {
		h.log.ErrorContext(ctx, "encode event", slog.String("type", string(e.Type)), slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		eventsDropped.Inc()
		h.log.WarnContext(ctx, "event subscriber too slow, disconnecting", slog.String("user_id", c.userID))
		h.remove(c)
	}
}

// ServeHTTP upgrades an authenticated request and streams events until
// the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := &client{
		conn:   conn,
		send:   make(chan []byte, h.cfg.ClientBuffer),
		done:   make(chan struct{}),
		userID: userID.String(),
	}
	if !h.add(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(h.cfg.WriteTimeout))
		_ = conn.Close()
		return
	}
	h.log.InfoContext(r.Context(), "event subscriber connected", slog.String("user_id", c.userID))

	go h.writeLoop(c)
	go h.readLoop(c)
}

// Close disconnects every subscriber and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	subscribers.Inc()
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		subscribers.Dec()
		c.stop()
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		h.remove(c)
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(h.cfg.WriteTimeout))
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.log.Debug("event write failed", slog.String("user_id", c.userID), slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards client frames; it exists to process control frames and
// notice when the peer disconnects.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	deadline := 2 * h.cfg.PingInterval
	_ = c.conn.SetReadDeadline(time.Now().Add(deadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(deadline))
	})
	c.conn.SetReadLimit(4096)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	userID string
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

func originChecker(allowed string) func(r *http.Request) bool {
	origins := make(map[string]struct{})
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		if o != "" {
			origins[o] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := origins[origin]
		return ok
	}
}
