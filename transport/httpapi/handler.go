package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/orchestrator"
)

// Engine is the slice of the orchestrator the HTTP surface needs.
type Engine interface {
	Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error)
	Store() core.ProfileStore
}

// Deps wires the handler's collaborators.
type Deps struct {
	Engine Engine
	Logger logging.Logger
}

// TurnRequest is the payload of POST /v1/turn.
type TurnRequest struct {
	UserID    string `json:"user_id"`
	Utterance string `json:"utterance"`
}

// NewHandler builds the HTTP API. Turns for the same user are
// serialized here, matching the one-in-flight-turn-per-session rule the
// console driver enforces by construction.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logging.NewNoOpLogger()
	}
	h := &handler{
		engine: deps.Engine,
		logger: logging.NewAdvisorLogger(deps.Logger).WithComponent("httpapi"),
	}

	r := chi.NewRouter()
	r.Get("/healthz", h.handleHealth)
	r.Post("/v1/turn", h.handleTurn)
	r.Post("/v1/sessions/{userID}/clear", h.handleClear)
	r.Get("/v1/sessions/{userID}/profile", h.handleProfile)

	return r
}

type handler struct {
	engine Engine
	logger *logging.AdvisorLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// userLock returns the per-user mutex, creating it lazily.
func (h *handler) userLock(userID string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.locks == nil {
		h.locks = make(map[string]*sync.Mutex)
	}
	if _, ok := h.locks[userID]; !ok {
		h.locks[userID] = &sync.Mutex{}
	}
	return h.locks[userID]
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return
	}
	if req.UserID == "" {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "user_id is required")
		return
	}
	if req.Utterance == "" {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "utterance is required")
		return
	}

	lock := h.userLock(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	reply, err := h.engine.Turn(r.Context(), req.UserID, req.Utterance)
	if err != nil {
		h.logger.Error("turn failed", "user_id", req.UserID, "error", err.Error())
		httpError(w, http.StatusBadGateway, "turn_error", "turn failed: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *handler) handleClear(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := h.engine.Store().Clear(userID); err != nil {
		httpError(w, http.StatusInternalServerError, "store_error", "clear session: %v", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	projection, err := h.engine.Store().Snapshot(userID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "store_error", "profile snapshot: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, projection)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
