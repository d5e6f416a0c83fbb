package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// the browser client runs on a different origin
		return true
	},
}

// Event - one progress update pushed to subscribers of a job
type Event struct {
	Type       string    `json:"type"` // job_started | stage_update | asset_completed | asset_failed | job_completed | job_failed | job_cancelled
	JobID      string    `json:"jobId"`
	Stage      string    `json:"stage,omitempty"`
	AssetType  string    `json:"assetType,omitempty"`
	AssetID    string    `json:"assetId,omitempty"`
	Completed  int       `json:"completed,omitempty"`
	Total      int       `json:"total,omitempty"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// subscriber - one websocket connection watching a job
type subscriber struct {
	conn  *websocket.Conn
	jobID string
	send  chan []byte
}

// Metrics - hub counters for the /metrics endpoint
type Metrics struct {
	TotalSubscribers int       `json:"totalSubscribers"`
	ActiveJobs       int       `json:"activeJobs"`
	TotalEvents      int       `json:"totalEvents"`
	StartTime        time.Time `json:"startTime"`
}

// Hub - fan-out of job progress events to websocket subscribers
type Hub struct {
	mutex   sync.RWMutex
	jobs    map[string]map[*subscriber]bool
	metrics Metrics
}

func NewHub() *Hub {
	return &Hub{
		jobs: make(map[string]map[*subscriber]bool),
		metrics: Metrics{
			StartTime: time.Now(),
		},
	}
}

// ServeWS - upgrade /ws?job=<id> connections and register them
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		log.Printf("Missing job parameter")
		conn.Close()
		return
	}

	sub := &subscriber{
		conn:  conn,
		jobID: jobID,
		send:  make(chan []byte, 64),
	}

	h.mutex.Lock()
	if h.jobs[jobID] == nil {
		h.jobs[jobID] = make(map[*subscriber]bool)
	}
	h.jobs[jobID][sub] = true
	h.metrics.TotalSubscribers++
	h.metrics.ActiveJobs = len(h.jobs)
	subscriberCount := len(h.jobs[jobID])
	totalSubscribers := h.metrics.TotalSubscribers
	h.mutex.Unlock()

	log.Printf("👤 Subscriber joined job %s (watchers: %d, total: %d)",
		jobID, subscriberCount, totalSubscribers)

	go sub.writePump()
	go h.readPump(sub)
}

// Publish - broadcast an event to every subscriber of its job
func (h *Hub) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.metrics.TotalEvents++

	subs := h.jobs[event.JobID]
	for sub := range subs {
		select {
		case sub.send <- payload:
		default:
			// slow consumer, drop the connection
			close(sub.send)
			delete(subs, sub)
		}
	}
}

// Snapshot - current hub metrics
func (h *Hub) Snapshot() Metrics {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	m := h.metrics
	m.ActiveJobs = len(h.jobs)
	return m
}

// unsubscribe - drop a subscriber and clean up empty job entries
func (h *Hub) unsubscribe(sub *subscriber) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if subs, exists := h.jobs[sub.jobID]; exists {
		if _, ok := subs[sub]; ok {
			close(sub.send)
			delete(subs, sub)
		}
		if len(subs) == 0 {
			delete(h.jobs, sub.jobID)
			log.Printf("🧹 Cleaned up empty watcher set for job: %s", sub.jobID)
		}
	}
}

// readPump - consume control frames until the client disconnects
func (h *Hub) readPump(sub *subscriber) {
	defer func() {
		h.unsubscribe(sub)
		sub.conn.Close()
	}()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - push queued events to the client
func (s *subscriber) writePump() {
	defer s.conn.Close()

	for message := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	s.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
