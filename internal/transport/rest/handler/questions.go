package handler

import (
	"encoding/json"
	"net/http"

	"dumbuddy/internal/model"
	"dumbuddy/internal/service"
)

// QuestionsHandler serves single-player deck generation.
type QuestionsHandler struct {
	generator *service.GeneratorService
}

// NewQuestionsHandler creates a new questions handler.
func NewQuestionsHandler(generator *service.GeneratorService) *QuestionsHandler {
	return &QuestionsHandler{generator: generator}
}

// GenerateRequest is the request body for deck generation.
type GenerateRequest struct {
	Count int            `json:"count"`
	Level model.GameMode `json:"level"`
	Theme string         `json:"theme"`
}

// Generate handles POST /v1/ai-questions
func (h *QuestionsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	level := req.Level
	if level == "" {
		level = model.ModeMixed
	}

	cards := h.generator.Generate(r.Context(), model.GenerateRequest{
		Count: clampCount(req.Count),
		Level: level,
		Theme: truncateTheme(req.Theme),
	})

	// An empty deck cannot start a game; this only happens when the fallback
	// pool itself is empty.
	if len(cards) == 0 {
		writeError(w, http.StatusInternalServerError, "AI error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"cards": cards})
}
