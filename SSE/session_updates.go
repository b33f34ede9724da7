package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Broadcaster pushes update signals to every connected web client. The
// payload is a topic string: "refresh" for coarse list reloads, or
// "sessions:<client_id>" when a client's session collection changed.
type Broadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[chan string]bool),
	}
}

func (b *Broadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients, client)
	close(client)
}

func (b *Broadcaster) Broadcast(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- topic:
		case <-time.After(1 * time.Second):
			// If the client is not responding, unregister them.
			delete(b.clients, client)
			close(client)
		}
	}
}

// BroadcastSessions signals that one client's session collection changed.
func (b *Broadcaster) BroadcastSessions(clientID uint) {
	b.Broadcast(fmt.Sprintf("sessions:%d", clientID))
}

var Updates = NewBroadcaster()

func RequestSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string)

	Updates.Register(clientChan)
	defer Updates.Unregister(clientChan)
	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()
	for {
		select {
		case topic := <-clientChan:
			fmt.Fprintf(c.Writer, "data: %s\n\n", topic)
			c.Writer.Flush()
		case <-c.Writer.CloseNotify():
			// Client disconnected
			return
		}
	}
}
