package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/club59/pongking/internal/app/club"
	"github.com/club59/pongking/internal/domains/dtos"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
	"github.com/club59/pongking/pkg/logging"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *server) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	players, err := s.service.ListPlayers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.PlayerListResponseFromEntities(players))
}

func (s *server) handlePlayerGet(w http.ResponseWriter, r *http.Request) {
	player, err := s.service.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.PlayerResponseFromEntity(player))
}

func (s *server) handlePlayerCreate(w http.ResponseWriter, r *http.Request) {
	var req dtos.PlayerCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	player, err := s.service.CreatePlayer(
		r.Context(),
		req.Name,
		entities.Tier(req.Tier),
		req.Attributes,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusCreated, dtos.PlayerResponseFromEntity(player))
}

func (s *server) handlePlayerUpdate(w http.ResponseWriter, r *http.Request) {
	var req dtos.PlayerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	update := club.PlayerUpdate{
		Name:       req.Name,
		Attributes: req.Attributes,
	}
	if req.Tier != nil {
		tier := entities.Tier(*req.Tier)
		update.Tier = &tier
	}
	player, err := s.service.UpdatePlayer(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.PlayerResponseFromEntity(player))
}

func (s *server) handlePlayerDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handlePlayerScouting(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.service.AnalyzePlayerHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.HistoryAnalysisResponse{Analysis: analysis})
}

func (s *server) handleMatchList(w http.ResponseWriter, r *http.Request) {
	matches, err := s.service.ListMatches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.MatchListResponseFromEntities(matches))
}

func (s *server) handleMatchGet(w http.ResponseWriter, r *http.Request) {
	match, err := s.service.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.MatchResponseFromEntity(match))
}

func (s *server) handleMatchSubmit(w http.ResponseWriter, r *http.Request) {
	var req dtos.MatchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	match, err := s.service.SubmitMatch(r.Context(), club.MatchSubmission{
		Player1Id: req.Player1Id,
		Player2Id: req.Player2Id,
		Score1:    req.Score1,
		Score2:    req.Score2,
		BetTag:    req.BetTag,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusCreated, dtos.MatchResponseFromEntity(match))
}

func (s *server) handleMatchDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleMatchPreview(w http.ResponseWriter, r *http.Request) {
	var req dtos.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	prediction, err := s.service.PredictMatch(r.Context(), req.Player1Id, req.Player2Id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.PredictionResponseFromReport(prediction))
}

func (s *server) handleRankings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.service.Rankings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJson(w, http.StatusOK, dtos.StandingListResponseFromEntities(standings))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJson(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, club.ErrValidation):
		writeJson(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, interfaces.ErrPlayerNotFound),
		errors.Is(err, interfaces.ErrMatchNotFound):
		writeJson(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logging.Error("request failed", zap.Error(err))
		writeJson(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
