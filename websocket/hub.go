package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/stellarstyles/salon_backend/models"
)

// The hub pushes appointment activity to every connected admin dashboard, so
// a new booking shows up without a refresh.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Event is what goes over the wire to admin dashboards.
type Event struct {
	Type        string             `json:"type"` // "appointment_created" or "status_changed"
	Appointment models.Appointment `json:"appointment"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan Event, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin dashboard connected: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin dashboard disconnected: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var stale []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending event to admin %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Notify hands an event to the hub without blocking the request that
// triggered it. Events are dropped if the hub is saturated.
func Notify(eventType string, appointment models.Appointment) {
	select {
	case Broadcast <- Event{Type: eventType, Appointment: appointment}:
	default:
		log.Println("WebSocket hub busy, dropping event")
	}
}
