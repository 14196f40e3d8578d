package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

type fakeStore struct {
	saved chan MessagePayload
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		saved: make(chan MessagePayload, 1),
	}
}

func (s *fakeStore) SaveMessage(ctx context.Context, name, message string) error {
	s.saved <- MessagePayload{Name: name, Message: message}
	return s.err
}

func recv(t *testing.T, client *Client) Envelope {
	t.Helper()

	select {
	case frame, ok := <-client.Send():
		if !ok {
			t.Fatal("the send channel was closed")
		}

		var envelope Envelope
		err := json.Unmarshal(frame, &envelope)
		if err != nil {
			t.Fatal(err)
		}

		return envelope
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a frame")
		return Envelope{}
	}
}

func recvEvent(t *testing.T, client *Client, event string) Envelope {
	t.Helper()

	envelope := recv(t, client)
	if envelope.Event != event {
		t.Fatalf("expected a %s event, got %s", event, envelope.Event)
	}

	return envelope
}

func onlineCount(t *testing.T, envelope Envelope) int {
	t.Helper()

	var count int
	err := json.Unmarshal(envelope.Data, &count)
	if err != nil {
		t.Fatal(err)
	}

	return count
}

func TestPresenceCounting(t *testing.T) {
	relay := New(newFakeStore())
	go relay.Run()
	defer relay.Stop()

	first := relay.Register()
	if count := onlineCount(t, recvEvent(t, first, EventUsersOnline)); count != 1 {
		t.Fatalf("expected 1 user online, got %d", count)
	}

	second := relay.Register()
	if count := onlineCount(t, recvEvent(t, first, EventUsersOnline)); count != 2 {
		t.Fatalf("expected 2 users online, got %d", count)
	}
	if count := onlineCount(t, recvEvent(t, second, EventUsersOnline)); count != 2 {
		t.Fatalf("expected 2 users online, got %d", count)
	}

	relay.Unregister(second)
	if count := onlineCount(t, recvEvent(t, first, EventUsersOnline)); count != 1 {
		t.Fatalf("expected 1 user online after the disconnect, got %d", count)
	}
}

func TestSendMessageIsBroadcastToEveryone(t *testing.T) {
	store := newFakeStore()
	relay := New(store)
	go relay.Run()
	defer relay.Stop()

	first := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	second := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	recvEvent(t, second, EventUsersOnline)

	payload, err := json.Marshal(MessagePayload{Name: "Vinuka", Message: "O negative needed in Colombo"})
	if err != nil {
		t.Fatal(err)
	}
	relay.Dispatch(first, mustMarshal(Envelope{
		Event: EventSendMessage,
		Data:  payload,
	}))

	// the sender receives its own message back as well
	for _, client := range []*Client{first, second} {
		envelope := recvEvent(t, client, EventReceiveMessage)

		var got MessagePayload
		err = json.Unmarshal(envelope.Data, &got)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Vinuka" || got.Message != "O negative needed in Colombo" {
			t.Fatalf("unexpected payload %+v", got)
		}
	}

	select {
	case saved := <-store.saved:
		if saved.Name != "Vinuka" || saved.Message != "O negative needed in Colombo" {
			t.Fatalf("unexpected persisted payload %+v", saved)
		}
	case <-time.After(time.Second):
		t.Fatal("the message was never persisted")
	}
}

func TestPersistenceFailureDoesNotBlockDelivery(t *testing.T) {
	store := newFakeStore()
	store.err = fmt.Errorf("the database is down")
	relay := New(store)
	go relay.Run()
	defer relay.Stop()

	client := relay.Register()
	recvEvent(t, client, EventUsersOnline)

	payload, err := json.Marshal(MessagePayload{Name: "Vinuka", Message: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	relay.Dispatch(client, mustMarshal(Envelope{
		Event: EventSendMessage,
		Data:  payload,
	}))

	// delivery happens regardless of what the store does with the message
	recvEvent(t, client, EventReceiveMessage)

	select {
	case <-store.saved:
	case <-time.After(time.Second):
		t.Fatal("the save was never attempted")
	}
}

func TestTypingEventsExcludeTheSender(t *testing.T) {
	relay := New(newFakeStore())
	go relay.Run()
	defer relay.Stop()

	first := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	second := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	recvEvent(t, second, EventUsersOnline)

	relay.Dispatch(first, mustMarshal(Envelope{
		Event: EventUserTyping,
	}))
	recvEvent(t, second, EventUserTyping)

	relay.Dispatch(first, mustMarshal(Envelope{
		Event: EventUserStoppedTyping,
	}))
	recvEvent(t, second, EventUserStoppedTyping)

	// once the second client has seen both events the broadcasts are done,
	// and nothing should have been queued for the sender
	select {
	case frame := <-first.Send():
		t.Fatalf("the sender received its own typing event: %s", frame)
	default:
	}
}

func TestNotify(t *testing.T) {
	relay := New(newFakeStore())
	go relay.Run()
	defer relay.Stop()

	first := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	second := relay.Register()
	recvEvent(t, first, EventUsersOnline)
	recvEvent(t, second, EventUsersOnline)

	relay.Notify("blood donation camp this Sunday")

	for _, client := range []*Client{first, second} {
		envelope := recvEvent(t, client, EventNotification)

		var message string
		err := json.Unmarshal(envelope.Data, &message)
		if err != nil {
			t.Fatal(err)
		}
		if message != "blood donation camp this Sunday" {
			t.Fatalf("unexpected notification %q", message)
		}
	}
}

func TestStopDisconnectsEveryClient(t *testing.T) {
	relay := New(newFakeStore())
	go relay.Run()

	client := relay.Register()
	recvEvent(t, client, EventUsersOnline)

	relay.Stop()

	for {
		select {
		case _, ok := <-client.Send():
			if !ok {
				return
			}
		case <-time.After(time.Second):
			t.Fatal("the send channel was never closed")
		}
	}
}
