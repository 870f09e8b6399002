package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"go.uber.org/zap"
	"xiangqi/internal/config"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games  *game.Manager
	cfg    *config.Config
	logger *zap.Logger
}

func NewHandler(games *game.Manager, cfg *config.Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		c := config.DefaultConfig
		cfg = &c
	}
	return &Handler{games: games, cfg: cfg, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var handle func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		handle = h.handleNewGame
	case "/api/play":
		handle = h.handlePlay
	case "/api/state":
		handle = h.handleState
	case "/api/legal_moves":
		handle = h.handleLegalMoves
	case "/api/resign":
		handle = h.handleResign
	case "/api/save":
		handle = h.handleSave
	case "/api/load":
		handle = h.handleLoad
	case "/api/delete_game":
		handle = h.handleDeleteGame
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handle(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s := h.games.NewGame()
	var resp StateResponse
	s.Do(func(g *xiangqi.Game) { resp = snapshot(s.ID, g) })
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}

	// 非法着法不是 HTTP 错误：ok=false，局面不变
	var resp PlayResponse
	m := dtoToMove(req.Move)
	s.Do(func(g *xiangqi.Game) {
		resp.OK = g.AttemptMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol)
		resp.StateResponse = snapshot(s.ID, g)
	})
	if !resp.OK {
		h.logger.Debug("illegal move", zap.String("game_id", s.ID), zap.Any("move", req.Move))
	}
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	var resp StateResponse
	s.Do(func(g *xiangqi.Game) { resp = snapshot(s.ID, g) })
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	resp := LegalMovesResponse{LegalMoves: []MoveDTO{}}
	s.Do(func(g *xiangqi.Game) {
		resp.ToMove = sideToInt(g.SideToMove())
		if !g.GameOver() {
			resp.LegalMoves = movesToDTO(g.LegalMoves(g.SideToMove()))
		}
	})
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleResign(w http.ResponseWriter, r *http.Request) {
	var req ResignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var side xiangqi.Side
	switch req.Side {
	case "":
		side = xiangqi.NoSide
	case "red":
		side = xiangqi.Red
	case "black":
		side = xiangqi.Black
	default:
		http.Error(w, "bad side", http.StatusBadRequest)
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	var resp StateResponse
	s.Do(func(g *xiangqi.Game) {
		if side == xiangqi.NoSide {
			g.ResignCurrentPlayer()
		} else {
			g.Resign(side)
		}
		resp = snapshot(s.ID, g)
	})
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	path, ok := h.savePath(w, req.Slot)
	if !ok {
		return
	}
	var err error
	s.Do(func(g *xiangqi.Game) { err = g.Save(path) })
	if err != nil {
		h.logger.Error("save failed", zap.String("game_id", s.ID), zap.Error(err))
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, SaveResponse{OK: true, Slot: req.Slot})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	path, ok := h.savePath(w, req.Slot)
	if !ok {
		return
	}
	var (
		err  error
		resp StateResponse
	)
	s.Do(func(g *xiangqi.Game) {
		err = g.Load(path)
		resp = snapshot(s.ID, g)
	})
	switch {
	case err == nil:
		writeJSON(w, h.logger, resp)
	case errors.Is(err, os.ErrNotExist):
		http.Error(w, "save slot not found", http.StatusNotFound)
	case errors.Is(err, xiangqi.ErrMalformedSave):
		http.Error(w, "malformed save file", http.StatusUnprocessableEntity)
	default:
		h.logger.Error("load failed", zap.String("game_id", s.ID), zap.Error(err))
		http.Error(w, "load failed", http.StatusInternalServerError)
	}
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.games.Delete(req.GameID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, id string) (*game.Session, bool) {
	s, err := h.games.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) savePath(w http.ResponseWriter, slot string) (string, bool) {
	path, err := h.cfg.SavePath(slot)
	if err != nil {
		var invalid *config.InvalidConfigError
		if errors.As(err, &invalid) {
			http.Error(w, "bad slot", http.StatusBadRequest)
			return "", false
		}
		h.logger.Error("save dir unavailable", zap.Error(err))
		http.Error(w, "save dir unavailable", http.StatusInternalServerError)
		return "", false
	}
	return path, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writeJSON error", zap.Error(err))
	}
}
