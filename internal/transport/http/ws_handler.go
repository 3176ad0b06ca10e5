package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"jeopardy-board-service/internal/app"
)

// WSHandler drives one game over a websocket: the presentation layer sends
// selection, wager and resolution events and receives board snapshots back.
type WSHandler struct {
	games    *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(games *app.GameService) *WSHandler {
	return &WSHandler{
		games: games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	SetID   string   `json:"setId"`
	Players []string `json:"players"`
}

type selectPayload struct {
	QuestionID string `json:"questionId"`
}

type wagerPayload struct {
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
}

type resolvePayload struct {
	// PlayerID is the player who answered correctly; empty means nobody.
	PlayerID string `json:"playerId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the game event loop. Validation
// errors go back as error messages with the game state untouched; the client
// may correct and resend.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		http.Error(w, "missing gameId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()

	// Resuming a running game starts with a snapshot.
	if board, err := h.games.Board(ctx, gameID); err == nil {
		h.send(conn, "board", board)
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid start payload")
				continue
			}
			board, err := h.games.StartGame(ctx, gameID, payload.SetID, payload.Players)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "board", board)

		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid select payload")
				continue
			}
			question, err := h.games.SelectQuestion(ctx, gameID, payload.QuestionID)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "question", question)

		case "wager":
			// Non-numeric amounts fail JSON decoding here, before any
			// range check.
			var payload wagerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid wager payload")
				continue
			}
			question, err := h.games.SubmitWager(ctx, gameID, payload.PlayerID, payload.Amount)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "question", question)

		case "trueDouble":
			var payload resolvePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid trueDouble payload")
				continue
			}
			question, err := h.games.TrueDailyDouble(ctx, gameID, payload.PlayerID)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "question", question)

		case "resolve":
			var payload resolvePayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					h.sendError(conn, "invalid resolve payload")
					continue
				}
			}
			outcome, err := h.games.ResolveAnswer(ctx, gameID, payload.PlayerID)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "outcome", outcome)
			if board, err := h.games.Board(ctx, gameID); err == nil {
				h.send(conn, "board", board)
			}
			if outcome.GameComplete {
				if standings, err := h.games.Standings(ctx, gameID); err == nil {
					h.send(conn, "standings", standings)
				}
			}

		case "cancel":
			if err := h.games.CancelQuestion(ctx, gameID); err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			if board, err := h.games.Board(ctx, gameID); err == nil {
				h.send(conn, "board", board)
			}

		case "board":
			board, err := h.games.Board(ctx, gameID)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, "board", board)

		default:
			h.sendError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) send(conn *websocket.Conn, msgType string, payload any) {
	if err := conn.WriteJSON(outboundMessage[any]{Type: msgType, Payload: payload}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

func (h *WSHandler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, "error", errorPayload{Message: message})
}
