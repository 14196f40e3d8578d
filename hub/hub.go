// Package hub relays chat, typing and presence events to every connected client
package hub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/google/uuid"
)

// Named events of the realtime channel
const (
	EventSendMessage       = "sendMessage"
	EventReceiveMessage    = "receiveMessage"
	EventUserTyping        = "userTyping"
	EventUserStoppedTyping = "userStoppedTyping"
	EventUsersOnline       = "usersOnline"
	EventNotification      = "notification"
)

// sendBuffer is the per client outbound queue; a client that cannot keep
// up is dropped from the hub
const sendBuffer = 64

// Envelope is the wire format of every event on the channel
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MessagePayload is the body of sendMessage / receiveMessage events
type MessagePayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// MessageStore persists relayed chat messages; persistence is best effort,
// it happens after the broadcast and its failure never reaches the sender
type MessageStore interface {
	SaveMessage(ctx context.Context, name, message string) error
}

// Client is a single connected party
type Client struct {
	ID   string
	send chan []byte
}

// Send is the outbound event stream of the client
func (c *Client) Send() <-chan []byte {
	return c.send
}

type inbound struct {
	client   *Client
	envelope Envelope
}

// Hub owns the connection registry and the online counter; all state is
// mutated from the single Run loop, so no locking is needed
type Hub struct {
	store MessageStore

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan inbound
	notify     chan string
	done       chan struct{}
}

// New creates a hub persisting messages to the given store
func New(store MessageStore) *Hub {
	return &Hub{
		store:      store,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan inbound),
		notify:     make(chan string),
		done:       make(chan struct{}),
	}
}

// Run processes connection events one at a time until Stop is called
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.broadcastCount()

		case client := <-h.unregister:
			h.drop(client)
			h.broadcastCount()

		case ev := <-h.events:
			h.handle(ev)

		case message := <-h.notify:
			h.broadcast(mustMarshal(Envelope{
				Event: EventNotification,
				Data:  mustMarshalRaw(message),
			}), nil)

		case <-h.done:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

// Stop shuts the hub down and disconnects every client
func (h *Hub) Stop() {
	close(h.done)
}

// Register attaches a new client to the hub
func (h *Hub) Register() *Client {
	client := &Client{
		ID:   uuid.NewString(),
		send: make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}

	return client
}

// Unregister detaches the client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Dispatch feeds a raw inbound frame from the client into the hub
func (h *Hub) Dispatch(client *Client, raw []byte) {
	var envelope Envelope
	err := json.Unmarshal(raw, &envelope)
	if err != nil {
		logger.Error(err)
		return
	}

	select {
	case h.events <- inbound{client: client, envelope: envelope}:
	case <-h.done:
	}
}

// Notify broadcasts an ad hoc notification string to every client
func (h *Hub) Notify(message string) {
	select {
	case h.notify <- message:
	case <-h.done:
	}
}

func (h *Hub) handle(ev inbound) {
	switch ev.envelope.Event {
	case EventSendMessage:
		// the broadcast goes out first; persistence is fire and forget
		// relative to delivery
		h.broadcast(mustMarshal(Envelope{
			Event: EventReceiveMessage,
			Data:  ev.envelope.Data,
		}), nil)

		var payload MessagePayload
		err := json.Unmarshal(ev.envelope.Data, &payload)
		if err != nil {
			logger.Error(err)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := h.store.SaveMessage(ctx, payload.Name, payload.Message)
			if err != nil {
				logger.ErrorWithMsg(err, "Failed to save the chat message")
			}
		}()

	case EventUserTyping, EventUserStoppedTyping:
		h.broadcast(mustMarshal(Envelope{
			Event: ev.envelope.Event,
		}), ev.client)
	}
}

// broadcast queues the frame on every connected client except the one
// given; clients with a full queue are dropped and the new count is
// announced like any other disconnect
func (h *Hub) broadcast(frame []byte, except *Client) {
	var stale []*Client
	for client := range h.clients {
		if client == except {
			continue
		}

		select {
		case client.send <- frame:
		default:
			stale = append(stale, client)
		}
	}

	for _, client := range stale {
		h.drop(client)
	}
	if len(stale) > 0 {
		h.broadcastCount()
	}
}

func (h *Hub) broadcastCount() {
	h.broadcast(mustMarshal(Envelope{
		Event: EventUsersOnline,
		Data:  mustMarshalRaw(len(h.clients)),
	}), nil)
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)
}

func mustMarshal(envelope Envelope) []byte {
	frame, err := json.Marshal(envelope)
	if err != nil {
		logger.Error(err)
		return nil
	}

	return frame
}

func mustMarshalRaw(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error(err)
		return nil
	}

	return raw
}
