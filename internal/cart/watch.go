package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	watchWriteWait  = 10 * time.Second
	watchPongWait   = 60 * time.Second
	watchPingPeriod = (watchPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The storefront is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ChangeSource interface {
	SubscribeChanges(ctx context.Context) *goredis.PubSub
}

// ChangeNotification is pushed to every watcher of a mutated cart.
type ChangeNotification struct {
	CartID string `json:"cartId"`
	Event  string `json:"event"`
}

// WatchHub fans cart change notifications out to WebSocket watchers. Each
// open storefront view holds one connection per cart it renders; on a
// notification the view re-reads the cart. Last write wins, there is no
// conflict detection.
type WatchHub struct {
	source ChangeSource
	logger *zap.Logger

	mu       sync.Mutex
	watchers map[string]map[chan ChangeNotification]struct{}
}

func NewWatchHub(source ChangeSource, logger *zap.Logger) *WatchHub {
	return &WatchHub{
		source:   source,
		logger:   logger,
		watchers: make(map[string]map[chan ChangeNotification]struct{}),
	}
}

// Run consumes the change channel until ctx is canceled. Must be run in its
// own goroutine.
func (h *WatchHub) Run(ctx context.Context) {
	sub := h.source.SubscribeChanges(ctx)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.notify(msg.Payload)
		}
	}
}

func (h *WatchHub) notify(cartID string) {
	notification := ChangeNotification{CartID: cartID, Event: "cart.changed"}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.watchers[cartID] {
		select {
		case ch <- notification:
		default:
			// Slow watcher; it will catch up on its next re-read.
		}
	}
}

func (h *WatchHub) subscribe(cartID string) chan ChangeNotification {
	ch := make(chan ChangeNotification, 8)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[cartID] == nil {
		h.watchers[cartID] = make(map[chan ChangeNotification]struct{})
	}
	h.watchers[cartID][ch] = struct{}{}
	return ch
}

func (h *WatchHub) unsubscribe(cartID string, ch chan ChangeNotification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.watchers[cartID]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.watchers, cartID)
		}
	}
}

// WatcherCount reports how many connections watch the given cart.
func (h *WatchHub) WatcherCount(cartID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers[cartID])
}

// HandleWatch upgrades the request to a WebSocket and streams change
// notifications for one cart.
func (h *WatchHub) HandleWatch(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("watch upgrade failed", zap.String("cartId", cartID), zap.Error(err))
		return
	}

	ch := h.subscribe(cartID)
	defer h.unsubscribe(cartID, ch)

	done := make(chan struct{})
	go h.readLoop(conn, done)
	h.writeLoop(conn, ch, done)
}

// readLoop drains the connection so close frames and pongs are processed.
func (h *WatchHub) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(watchPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(watchPongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WatchHub) writeLoop(conn *websocket.Conn, ch chan ChangeNotification, done chan struct{}) {
	ticker := time.NewTicker(watchPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case notification := <-ch:
			conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			data, err := json.Marshal(notification)
			if err != nil {
				h.logger.Error("failed to encode notification", zap.Error(err))
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
