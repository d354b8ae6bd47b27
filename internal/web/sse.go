// Package web pushes availability updates to connected clients over
// server-sent events, so a table UI can refresh when new documents are
// uploaded.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/google/uuid"
)

// SSEClient represents a connected client receiving server-sent events
type SSEClient struct {
	id             string
	responseWriter http.ResponseWriter
	flusher        http.Flusher
	disconnected   chan struct{}

	// mu serializes writes to the response: the connection's own
	// heartbeat and broadcasts arrive from different goroutines
	mu         sync.Mutex
	lastActive time.Time
}

// writeEvent sends one event to the client and records the activity
func (c *SSEClient) writeEvent(event sse.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := sse.Encode(c.responseWriter, event); err != nil {
		return err
	}
	c.flusher.Flush()
	c.lastActive = time.Now()
	return nil
}

// writeComment sends a raw comment line, used as a heartbeat
func (c *SSEClient) writeComment(comment string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.responseWriter, ": %s\n\n", comment); err != nil {
		return err
	}
	c.flusher.Flush()
	c.lastActive = time.Now()
	return nil
}

func (c *SSEClient) active() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

// SSEManager handles server-sent events to clients
type SSEManager struct {
	clients      map[string]*SSEClient
	clientsMutex sync.RWMutex
	service      AvailabilityServicer
	shutdown     chan struct{}
}

// NewSSEManager creates a new server-sent events manager
func NewSSEManager(service AvailabilityServicer) *SSEManager {
	manager := &SSEManager{
		clients:  make(map[string]*SSEClient),
		service:  service,
		shutdown: make(chan struct{}),
	}

	// Regularly remove stale clients
	go manager.cleanupStaleClients()

	return manager
}

// cleanupStaleClients periodically removes clients that have not been
// active
func (sm *SSEManager) cleanupStaleClients() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sm.shutdown:
			return
		case <-ticker.C:
			threshold := time.Now().Add(-2 * time.Minute)

			sm.clientsMutex.Lock()
			for id, client := range sm.clients {
				select {
				case <-client.disconnected:
					delete(sm.clients, id)
				default:
					if client.active().Before(threshold) {
						close(client.disconnected)
						delete(sm.clients, id)
						log.Printf("Removed stale SSE client: %s", id)
					}
				}
			}
			sm.clientsMutex.Unlock()
		}
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections
func (sm *SSEManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	clientID := uuid.NewString()
	log.Printf("SSE client connected: %s from %s", clientID, r.RemoteAddr)

	client := &SSEClient{
		id:             clientID,
		responseWriter: w,
		flusher:        flusher,
		disconnected:   make(chan struct{}),
		lastActive:     time.Now(),
	}

	// Greet the client before it joins the broadcast set, so these
	// writes cannot interleave with a broadcast
	fmt.Fprint(w, "retry: 5000\n")
	sse.Encode(w, sse.Event{
		Event: "connected",
		Data:  map[string]string{"id": clientID},
	})
	flusher.Flush()

	sm.clientsMutex.Lock()
	sm.clients[clientID] = client
	sm.clientsMutex.Unlock()

	defer func() {
		sm.clientsMutex.Lock()
		delete(sm.clients, clientID)
		sm.clientsMutex.Unlock()
		log.Printf("SSE client disconnected: %s", clientID)
	}()

	// Send the current availability so a freshly connected client does
	// not wait for the next upload
	sm.sendAvailability(r.Context(), client)

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-client.disconnected:
			return
		case <-sm.shutdown:
			return
		case <-heartbeat.C:
			if err := client.writeComment("heartbeat " + time.Now().Format(time.RFC3339)); err != nil {
				return
			}
		}
	}
}

// sendAvailability pushes the current empty-room listing to a single
// client. Missing inputs are not an error at this point; the event is
// simply skipped.
func (sm *SSEManager) sendAvailability(ctx context.Context, client *SSEClient) {
	result, _, err := sm.service.EmptyRooms(ctx)
	if err != nil {
		return
	}
	client.writeEvent(sse.Event{
		Event: "availability",
		Data:  result,
	})
}

// NotifyAvailabilityChanged recomputes the empty-room listing and
// broadcasts it to all connected clients. Wired as a service update
// callback; kind names the record set that changed.
func (sm *SSEManager) NotifyAvailabilityChanged(kind string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, _, err := sm.service.EmptyRooms(ctx)
	if err != nil {
		// Only one of the two inputs has arrived yet
		return
	}

	sm.clientsMutex.RLock()
	defer sm.clientsMutex.RUnlock()

	for _, client := range sm.clients {
		select {
		case <-client.disconnected:
			continue
		default:
		}
		client.writeEvent(sse.Event{
			Event: "availability",
			Data:  result,
		})
	}
	log.Printf("Broadcast availability update after %s change to %d clients", kind, len(sm.clients))
}

// Shutdown closes all client connections and stops the cleanup sweep
func (sm *SSEManager) Shutdown() {
	close(sm.shutdown)

	sm.clientsMutex.Lock()
	defer sm.clientsMutex.Unlock()
	for id, client := range sm.clients {
		select {
		case <-client.disconnected:
		default:
			close(client.disconnected)
		}
		delete(sm.clients, id)
	}
}
