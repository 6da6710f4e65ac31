package ws_room

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gorilla/websocket"

	infra_events "github.com/ibanezbetes/trinity/core/internal/infra/events"
	"github.com/ibanezbetes/trinity/core/internal/model"
)

type EventType string

const (
	EventMatchFound EventType = "MATCH_FOUND"
)

type Event struct {
	Type EventType              `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	RoomID model.RoomID
}

// Hub fans match notifications out to the websocket clients of each room.
type Hub struct {
	mu sync.RWMutex

	rooms  map[model.RoomID]map[*Client]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		rooms:  make(map[model.RoomID]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomID]; !ok {
		h.rooms[client.RoomID] = make(map[*Client]bool)
	}
	h.rooms[client.RoomID][client] = true

	h.logger.Info("ws client registered", "room_id", client.RoomID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropClient(client)
}

// dropClient must run under the write lock. Closing Send stops the
// client's writer pump; the membership check makes a repeated drop for
// the same client a no-op, so Send is closed exactly once.
func (h *Hub) dropClient(client *Client) {
	room, ok := h.rooms[client.RoomID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}

	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, client.RoomID)
	}
	close(client.Send)

	h.logger.Info("ws client unregistered", "room_id", client.RoomID)
}

func (h *Hub) BroadcastToRoom(roomID model.RoomID, event Event) {
	eventBytes, _ := json.Marshal(event)

	var slow []*Client
	h.mu.RLock()
	for client := range h.rooms[roomID] {
		select {
		case client.Send <- eventBytes:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return
	}

	h.mu.Lock()
	for _, client := range slow {
		h.dropClient(client)
	}
	h.mu.Unlock()
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}

type MatchSource interface {
	SubscribeMatchFound(ctx context.Context) (<-chan *message.Message, error)
}

// RelayMatches pushes every match event from the bus to the matched
// room's clients. Blocks until ctx is cancelled.
func (h *Hub) RelayMatches(ctx context.Context, source MatchSource) error {
	messages, err := source.SubscribeMatchFound(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var payload infra_events.MatchFoundPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.logger.Warn("dropping malformed match event", "error", err)
				msg.Ack()
				continue
			}

			h.BroadcastToRoom(model.RoomID(payload.RoomID), Event{
				Type: EventMatchFound,
				Data: map[string]interface{}{
					"candidate_id": payload.CandidateID,
					"title":        payload.Title,
					"participants": payload.Participants,
					"reached_at":   payload.ReachedAt,
				},
			})
			msg.Ack()
		}
	}
}
