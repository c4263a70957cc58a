package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadLimit  = 64 * 1024
	wsWriteWait  = 10 * time.Second
	wsTypeError  = "error"
	wsTypeHand   = "hand_odds"
	wsTypeOdds   = "odds"
)

// wsRequest is one client frame on /ws
type wsRequest struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// wsResponse answers a wsRequest with the same id
type wsResponse struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

var errUnknownType = errors.New("unknown request type")

// handleWebSocket upgrades the connection and answers frames in order until
// the client goes away or the server shuts down.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}
	s.track(conn)
	defer func() {
		s.untrack(conn)
		_ = conn.Close() // Ignore close errors on disconnect
	}()

	conn.SetReadLimit(wsReadLimit)

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().Err(err).Msg("WebSocket read failed")
			}
			return
		}

		resp := s.dispatch(r.Context(), req)

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn().Err(err).Str("id", req.ID).Msg("WebSocket write failed")
			return
		}
	}
}

// dispatch runs one frame and never returns a partial result with an error
func (s *Server) dispatch(ctx context.Context, req wsRequest) wsResponse {
	result, err := s.runFrame(ctx, req)
	if err != nil {
		s.logger.Debug().Err(err).Str("id", req.ID).Str("type", req.Type).Msg("WebSocket request failed")
		return wsResponse{ID: req.ID, Type: wsTypeError, Error: err.Error()}
	}
	return wsResponse{ID: req.ID, Type: req.Type, Result: result}
}

func (s *Server) runFrame(ctx context.Context, req wsRequest) (any, error) {
	switch req.Type {
	case wsTypeHand:
		var payload HandOddsRequest
		if err := unmarshalPayload(req.Payload, &payload); err != nil {
			return nil, err
		}
		return s.handOdds(ctx, payload)

	case wsTypeOdds:
		var payload OddsRequest
		if err := unmarshalPayload(req.Payload, &payload); err != nil {
			return nil, err
		}
		return s.winOdds(ctx, payload)

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, req.Type)
	}
}

func unmarshalPayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing payload", errBadRequest)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
