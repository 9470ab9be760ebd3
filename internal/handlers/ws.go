package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// ConnectWS upgrades the request and plays the session over a text protocol:
// each message is a newline-separated batch of commands ("o <row> <col>",
// "f <row> <col>", "g"), answered with the session JSON after the batch is
// applied. The connection is the single writer of its session for its
// lifetime.
func (h Boards) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, b, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("unable to read ws message", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := strings.TrimSpace(string(message))
		for _, cmd := range byPiece(text, "\n") {
			if _, err := ExecuteCommand(b, cmd); err != nil {
				if writeErr := c.WriteJSON(wrapError(err)); writeErr != nil {
					h.logger.Error("unable to write ws error", "error", writeErr)
				}
				break
			}
		}

		if err := h.repo.UpdateBoardSession(r.Context(), session.BoardSessionID, b); err != nil {
			h.logger.Error("unable to update session in db", "error", err)
			break
		}

		if err := c.WriteJSON(NewBoardSessionDTO(session, b)); err != nil {
			h.logger.Error("unable to write ws message", "error", err)
			break
		}
	}
}
