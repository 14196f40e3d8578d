package hub

import (
	"github.com/gofiber/contrib/websocket"
)

// Serve pumps frames between a websocket connection and the hub; it
// returns when the client disconnects. No authentication is enforced on
// the realtime channel
func (h *Hub) Serve(conn *websocket.Conn) {
	client := h.Register()
	defer h.Unregister(client)

	go func() {
		for frame := range client.Send() {
			err := conn.WriteMessage(websocket.TextMessage, frame)
			if err != nil {
				return
			}
		}

		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		h.Dispatch(client, raw)
	}
}
