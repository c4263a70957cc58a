package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks malformed request bodies
var errBadRequest = errors.New("bad request")

// HandOddsRequest is the body of POST /calculate_hand_odds
type HandOddsRequest struct {
	PlayerCards    []string `json:"playerCards"`
	CommunityCards []string `json:"communityCards"`
	NumSimulations *int     `json:"numSimulations,omitempty"`
	AllCategories  bool     `json:"allCategories,omitempty"`
	Seed           *int64   `json:"seed,omitempty"`
}

// OddsRequest is the body of POST /calculate_odds
type OddsRequest struct {
	PlayerCards    []string `json:"playerCards"`
	CommunityCards []string `json:"communityCards"`
	NumOpponents   *int     `json:"numOpponents,omitempty"`
	NumSimulations *int     `json:"numSimulations,omitempty"`
	Seed           *int64   `json:"seed,omitempty"`
}

// OddsResponse is the body returned by POST /calculate_odds
type OddsResponse struct {
	WinProbability  float64 `json:"winProbability"`
	TieProbability  float64 `json:"tieProbability"`
	LossProbability float64 `json:"lossProbability"`
	Equity          float64 `json:"equity"`
	Trials          int     `json:"trials"`
	Opponents       int     `json:"opponents"`
	Seed            int64   `json:"seed"`
	ElapsedMS       int64   `json:"elapsedMs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handOdds runs a category-distribution request
func (s *Server) handOdds(ctx context.Context, req HandOddsRequest) (map[string]float64, error) {
	simReq, err := s.simulationRequest(req.PlayerCards, req.CommunityCards, req.NumSimulations, req.Seed)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel(nil)

	dist, err := s.sim.CategoryDistribution(ctx, simReq)
	if err != nil {
		return nil, s.deadlineError(ctx, err)
	}

	if req.AllCategories {
		return dist.All(), nil
	}
	return dist.Legacy(), nil
}

// winOdds runs a win-probability request
func (s *Server) winOdds(ctx context.Context, req OddsRequest) (OddsResponse, error) {
	simReq, err := s.simulationRequest(req.PlayerCards, req.CommunityCards, req.NumSimulations, req.Seed)
	if err != nil {
		return OddsResponse{}, err
	}
	simReq.Opponents = s.cfg.Simulation.DefaultOpponents
	if req.NumOpponents != nil {
		simReq.Opponents = *req.NumOpponents
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel(nil)

	result, err := s.sim.WinProbability(ctx, simReq)
	if err != nil {
		return OddsResponse{}, s.deadlineError(ctx, err)
	}

	return OddsResponse{
		WinProbability:  result.WinProbability(),
		TieProbability:  result.TieProbability(),
		LossProbability: result.LossProbability(),
		Equity:          result.Equity(),
		Trials:          result.Trials,
		Opponents:       result.Opponents,
		Seed:            result.Seed,
		ElapsedMS:       result.Elapsed.Milliseconds(),
	}, nil
}

func (s *Server) simulationRequest(hole, community []string, trials *int, seed *int64) (odds.Request, error) {
	holeCards, err := NormalizeCards(hole)
	if err != nil {
		return odds.Request{}, fmt.Errorf("playerCards: %w", err)
	}
	communityCards, err := NormalizeCards(community)
	if err != nil {
		return odds.Request{}, fmt.Errorf("communityCards: %w", err)
	}

	n := s.cfg.Simulation.DefaultTrials
	if trials != nil {
		n = *trials
	}
	if n > s.cfg.Simulation.MaxTrials {
		return odds.Request{}, fmt.Errorf("%w: numSimulations %d exceeds the limit of %d",
			odds.ErrInvalidRequest, n, s.cfg.Simulation.MaxTrials)
	}

	return odds.Request{
		Hole:      holeCards,
		Community: communityCards,
		Trials:    n,
		Seed:      seed,
	}, nil
}

// withDeadline bounds a simulation by the configured request timeout. The
// deadline runs on the server clock so tests can drive it.
func (s *Server) withDeadline(ctx context.Context) (context.Context, context.CancelCauseFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	timer := s.clock.AfterFunc(s.cfg.RequestTimeout(), func() {
		cancel(context.DeadlineExceeded)
	})
	return ctx, func(cause error) {
		timer.Stop()
		cancel(cause)
	}
}

func (s *Server) deadlineError(ctx context.Context, err error) error {
	if errors.Is(context.Cause(ctx), context.DeadlineExceeded) {
		return fmt.Errorf("simulation exceeded %s: %w", s.cfg.RequestTimeout(), context.DeadlineExceeded)
	}
	return err
}

// statusFor maps an error onto an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, poker.ErrInvalidCard),
		errors.Is(err, poker.ErrInvalidHand),
		errors.Is(err, poker.ErrInsufficientDeck),
		errors.Is(err, odds.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHandOdds(w http.ResponseWriter, r *http.Request) {
	var req HandOddsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := s.handOdds(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	var req OddsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := s.winOdds(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	var data json.RawMessage
	if err := decodeBody(w, r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	hlog.FromRequest(r).Debug().RawJSON("data", data).Msg("Player stats received")
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "Player stats received",
		"data":   data,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no input", errBadRequest)
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) // Client may have gone away
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	event := hlog.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = hlog.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("Request failed")

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
