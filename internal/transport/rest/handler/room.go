package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"dumbuddy/internal/game"
	"dumbuddy/internal/model"
	"dumbuddy/internal/service"
)

const (
	defaultQuestionCount = 20
	maxQuestionCount     = 80
	maxThemeLen          = 120
)

// RoomHandler handles the room lifecycle endpoints.
type RoomHandler struct {
	registry  *game.Registry
	generator *service.GeneratorService
	analytics *service.AnalyticsService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(registry *game.Registry, generator *service.GeneratorService, analytics *service.AnalyticsService) *RoomHandler {
	return &RoomHandler{
		registry:  registry,
		generator: generator,
		analytics: analytics,
	}
}

// GameConfigPatch is the partial config clients may send; missing fields get
// defaults before anything reaches the registry.
type GameConfigPatch struct {
	Mode             *model.GameMode `json:"mode,omitempty"`
	IncludeWildcards *bool           `json:"includeWildcards,omitempty"`
	IncludeGoDeeper  *bool           `json:"includeGoDeeper,omitempty"`
}

// CreateRoomRequest is the request body for creating a room.
type CreateRoomRequest struct {
	Config        *GameConfigPatch `json:"config,omitempty"`
	HostName      string           `json:"hostName"`
	UseAI         bool             `json:"useAI"`
	QuestionCount int              `json:"questionCount"`
	Theme         string           `json:"theme"`
}

// CreateRoomResponse carries the host key exactly once; every later read of
// the room goes through the public state.
type CreateRoomResponse struct {
	RoomID     string                `json:"roomId"`
	HostKey    string                `json:"hostKey"`
	State      model.PublicRoomState `json:"state"`
	HostPlayer *model.RoomPlayer     `json:"hostPlayer"`
}

// Create handles POST /v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	// An empty or malformed body means "all defaults".
	_ = json.NewDecoder(r.Body).Decode(&req)

	cfg, err := resolveConfig(req.Config)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count := clampCount(req.QuestionCount)
	theme := truncateTheme(req.Theme)

	var opts *game.CreateOptions
	if req.UseAI {
		cards := h.generator.Generate(r.Context(), model.GenerateRequest{
			Count: count,
			Level: cfg.Mode,
			Theme: theme,
		})
		opts = &game.CreateOptions{
			Deck:          cards,
			QuestionCount: count,
			Theme:         theme,
			UseAI:         true,
		}
	}

	created, err := h.registry.Create(cfg, req.HostName, opts)
	if err != nil {
		if errors.Is(err, game.ErrEmptyDeck) {
			writeError(w, http.StatusInternalServerError, "deck generation produced no cards")
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.analytics.Record(r.Context(), model.EventSessionStart, map[string]interface{}{
		"roomId": created.RoomID,
		"mode":   string(cfg.Mode),
		"useAI":  req.UseAI,
	})

	writeJSON(w, http.StatusOK, CreateRoomResponse{
		RoomID:     created.RoomID,
		HostKey:    created.HostKey,
		State:      created.State,
		HostPlayer: created.HostPlayer,
	})
}

// Get handles GET /v1/rooms/{roomId}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	state, err := h.registry.Get(roomID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// ActionRequest is the request body for acting on a room.
type ActionRequest struct {
	Action  model.RoomAction `json:"action"`
	HostKey string           `json:"hostKey"`
}

// Act handles POST /v1/rooms/{roomId}
func (h *RoomHandler) Act(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req ActionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Action == "" || req.HostKey == "" {
		writeError(w, http.StatusBadRequest, "Missing action or hostKey")
		return
	}
	if !req.Action.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown action")
		return
	}

	result, err := h.registry.Apply(r.Context(), roomID, req.HostKey, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrRoomNotFound):
			writeError(w, http.StatusNotFound, "Room not found")
		case errors.Is(err, game.ErrInvalidHostKey):
			writeError(w, http.StatusForbidden, "Forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	h.recordAction(r, roomID, req.Action, result)

	writeJSON(w, http.StatusOK, result.State)
}

// JoinRequest is the request body for joining a room.
type JoinRequest struct {
	Name string `json:"name"`
}

// Join handles POST /v1/rooms/{roomId}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req JoinRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	state, player, err := h.registry.Join(roomID, name)
	if err != nil {
		writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":  state,
		"player": player,
	})
}

func (h *RoomHandler) recordAction(r *http.Request, roomID string, action model.RoomAction, result *game.ActionResult) {
	switch action {
	case model.ActionDraw:
		if result.Drawn == nil {
			return
		}
		h.analytics.Record(r.Context(), model.EventCardDrawn, map[string]interface{}{
			"roomId": roomID,
			"level":  string(result.Drawn.Level),
		})
	case model.ActionNext:
		h.analytics.Record(r.Context(), model.EventNextPlayer, map[string]interface{}{
			"roomId": roomID,
		})
	case model.ActionReset:
		h.analytics.Record(r.Context(), model.EventConfigChange, map[string]interface{}{
			"roomId": roomID,
		})
	}
}

// resolveConfig fills in defaults for missing fields and validates the mode.
func resolveConfig(patch *GameConfigPatch) (model.GameConfig, error) {
	cfg := model.GameConfig{
		Mode:             model.ModeMixed,
		IncludeWildcards: true,
		IncludeGoDeeper:  true,
	}
	if patch == nil {
		return cfg, nil
	}

	if patch.Mode != nil {
		if !patch.Mode.Valid() {
			return model.GameConfig{}, errors.New("invalid mode")
		}
		cfg.Mode = *patch.Mode
	}
	if patch.IncludeWildcards != nil {
		cfg.IncludeWildcards = *patch.IncludeWildcards
	}
	if patch.IncludeGoDeeper != nil {
		cfg.IncludeGoDeeper = *patch.IncludeGoDeeper
	}
	return cfg, nil
}

func clampCount(count int) int {
	if count == 0 {
		return defaultQuestionCount
	}
	if count < 1 {
		return 1
	}
	if count > maxQuestionCount {
		return maxQuestionCount
	}
	return count
}

func truncateTheme(theme string) string {
	theme = strings.TrimSpace(theme)
	runes := []rune(theme)
	if len(runes) > maxThemeLen {
		return string(runes[:maxThemeLen])
	}
	return theme
}
