package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
)

// EventTaskAssigned is pushed to a student when a task is assigned to them
const EventTaskAssigned = "task.assigned"

// Event is a notification pushed to one student's connections
type Event struct {
	Type      string    `json:"type"`
	StudentID uuid.UUID `json:"studentId"`
	TaskID    uuid.UUID `json:"taskId"`
	Title     string    `json:"title"`
	DueDate   string    `json:"dueDate"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of connected students and fans events out to them
type Hub struct {
	// Registered clients organized by student ID
	clients map[uuid.UUID]map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// guards clients for readers outside the Run goroutine
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan *Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.studentID]; !ok {
		h.clients[client.studentID] = make(map[*Client]bool)
	}
	h.clients[client.studentID][client] = true

	h.logger.Info().
		Str("studentID", client.studentID.String()).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.studentID]
	if !ok || !clients[client] {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.studentID)
	}

	h.logger.Info().
		Str("studentID", client.studentID.String()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, id)
	}
}

// broadcastEvent sends event to every connection of its student. Clients whose
// send buffer is full are dropped.
func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event for broadcast")
		return
	}

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients[event.StudentID] {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn().Str("studentID", client.studentID.String()).Msg("Dropping slow client")
		h.unregisterClient(client)
	}
}

// Publish hands event to the hub. It gives up when ctx ends or the hub has stopped.
func (h *Hub) Publish(ctx context.Context, event *Event) {
	select {
	case h.broadcast <- event:
	case <-ctx.Done():
	case <-h.done:
	}
}

// NotifyAssigned pushes a task.assigned event to each assigned student.
func (h *Hub) NotifyAssigned(ctx context.Context, task models.Task, assignments []models.StudentTask) {
	now := time.Now()
	for _, a := range assignments {
		h.Publish(ctx, &Event{
			Type:      EventTaskAssigned,
			StudentID: a.StudentID,
			TaskID:    task.ID,
			Title:     task.Title,
			DueDate:   task.DueDate,
			Timestamp: now,
		})
	}
}

// ClientsCount returns the number of open connections for a student
func (h *Hub) ClientsCount(studentID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[studentID])
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
