// Package notify pushes change notifications to websocket subscribers.
// Clients subscribe per campaign and refetch on every event; no row
// data travels over the socket.
package notify

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Hub struct {
	lock    sync.RWMutex
	clients map[*websocket.Conn]uint // conn -> campaign id
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func Upgrader() *websocket.Upgrader {
	return &upgrader
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]uint)}
}

func (h *Hub) AddClient(conn *websocket.Conn, campaignID uint) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.clients[conn] = campaignID
}

func (h *Hub) RemoveClient(conn *websocket.Conn) {
	h.lock.Lock()
	defer h.lock.Unlock()
	delete(h.clients, conn)
}

// ChangeEvent tells subscribers that rows of Table changed for the
// campaign; the client is expected to refetch the list.
type ChangeEvent struct {
	Type       string `json:"type"`
	Table      string `json:"table"`
	CampaignID uint   `json:"campaign_id"`
	Event      string `json:"event"` // "insert" / "update"
}

func (h *Hub) BroadcastChange(table string, campaignID uint, event string) {
	payload := ChangeEvent{
		Type:       "change",
		Table:      table,
		CampaignID: campaignID,
		Event:      event,
	}

	h.lock.RLock()
	defer h.lock.RUnlock()
	for client, id := range h.clients {
		if id != campaignID {
			continue
		}
		client.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := client.WriteJSON(payload); err != nil {
			client.Close()
			go h.RemoveClient(client)
		}
	}
}
