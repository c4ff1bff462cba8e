package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dumbuddy/internal/model"
	"dumbuddy/internal/service"
)

// AnalyticsHandler handles event reporting and the admin dashboard reads.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// ReportEventRequest is the body for client-reported events (single-device
// sessions report their local actions here).
type ReportEventRequest struct {
	Type model.EventType        `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// ReportEvent handles POST /v1/analytics/events
func (h *AnalyticsHandler) ReportEvent(w http.ResponseWriter, r *http.Request) {
	var req ReportEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	h.analytics.Record(r.Context(), req.Type, req.Data)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// Summary handles GET /v1/admin/summary
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analytics.Summary(r.Context()))
}

// Events handles GET /v1/admin/events
func (h *AnalyticsHandler) Events(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > model.EventLogLimit {
		limit = model.EventLogLimit
	}

	events := h.analytics.Recent(r.Context(), limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}
