package notify

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-uuid"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
)

// Hub fans invalidation events out to every connected websocket client. Run must
// be running for connections to register and for events to be delivered.
type Hub struct {
	clients    map[string]*ClientConnection
	register   chan *ClientConnection
	unregister chan *ClientConnection
	broadcast  chan Event
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*ClientConnection),
		register:   make(chan *ClientConnection),
		unregister: make(chan *ClientConnection),
		broadcast:  make(chan Event, 100),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			clog.For("notify").Debugf("Client registered: %s", client.ID)

		case client := <-h.unregister:
			h.removeClient(client)
			clog.For("notify").Debugf("Client unregistered: %s", client.ID)

		case event := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.Send <- event:
				default:
					// Client isn't keeping up; drop it and let it reconnect.
					clog.For("notify").Warnf("Dropping slow client %s", id)
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastInvalidate queues an invalidate event for keys. It has the signature of
// a qcache.Listener.
func (h *Hub) BroadcastInvalidate(keys []string) {
	event := Event{Type: EventInvalidate, Keys: keys, Timestamp: time.Now()}
	select {
	case h.broadcast <- event:
	default:
		clog.For("notify").Warnf("Broadcast queue full, dropping invalidate for %v", keys)
	}
}

// ClientCount is the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) removeClient(client *ClientConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		close(client.Send)
		delete(h.clients, id)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		clog.For("notify").Errorf("Upgrade error: %s", err)
		return
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		_ = conn.Close()
		return
	}

	client := &ClientConnection{
		ID:   id,
		Conn: conn,
		Send: make(chan Event, 256),
		Hub:  h,
	}

	client.Send <- Event{Type: EventConnected, Timestamp: time.Now()}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
