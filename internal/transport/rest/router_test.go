package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dumbuddy/internal/config"
	"dumbuddy/internal/deck"
	"dumbuddy/internal/game"
	"dumbuddy/internal/model"
	"dumbuddy/internal/service"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Port:               "8080",
		AdminUsername:      "admin",
		AdminPassword:      "secret",
		JWTSecret:          "test-secret",
		CORSAllowedOrigins: "*",
		CORSAllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
		CORSAllowedHeaders: "Content-Type, Authorization",
	}

	generator := service.NewGeneratorService(&config.AIConfig{TimeoutMS: 1000})

	return NewRouter(&Container{
		Config:      cfg,
		Registry:    game.NewRegistry(generator),
		Generator:   generator,
		Analytics:   service.NewAnalyticsService(nil, nil),
		AuthService: service.NewAuthService(cfg),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createRoom(t *testing.T, router http.Handler, body interface{}) map[string]json.RawMessage {
	t.Helper()

	w := doJSON(t, router, "POST", "/v1/rooms", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func rawString(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(raw, &s))
	return s
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateRoomEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := createRoom(t, router, map[string]interface{}{"hostName": "Alex"})

	roomID := rawString(t, resp["roomId"])
	assert.Len(t, roomID, 6)
	assert.NotEmpty(t, rawString(t, resp["hostKey"]))

	var state model.PublicRoomState
	require.NoError(t, json.Unmarshal(resp["state"], &state))
	require.Len(t, state.Players, 1)
	assert.Equal(t, "Alex", state.Players[0].Name)
	assert.Equal(t, len(deck.All()), state.TotalCards)

	var hostPlayer model.RoomPlayer
	require.NoError(t, json.Unmarshal(resp["hostPlayer"], &hostPlayer))
	assert.Equal(t, state.Players[0].ID, hostPlayer.ID)
}

func TestCreateRoomEmptyBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/v1/rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// All defaults: mixed deck, no host player.
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["hostPlayer"]))
}

func TestCreateRoomInvalidMode(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "POST", "/v1/rooms", map[string]interface{}{
		"config": map[string]interface{}{"mode": "9"},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomEndpoint(t *testing.T) {
	router := newTestRouter()
	resp := createRoom(t, router, map[string]interface{}{"hostName": "Alex"})
	roomID := rawString(t, resp["roomId"])
	hostKey := rawString(t, resp["hostKey"])

	w := doJSON(t, router, "GET", "/v1/rooms/"+roomID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The polling response must never leak the credential.
	assert.NotContains(t, w.Body.String(), hostKey)
	assert.NotContains(t, w.Body.String(), "hostKey")

	w = doJSON(t, router, "GET", "/v1/rooms/NOPE42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActEndpoint(t *testing.T) {
	router := newTestRouter()
	resp := createRoom(t, router, map[string]interface{}{"hostName": "Alex"})
	roomID := rawString(t, resp["roomId"])
	hostKey := rawString(t, resp["hostKey"])

	// Missing fields are rejected before touching the registry.
	w := doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{
		"action": "draw", "hostKey": "wrong",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/NOPE42", map[string]interface{}{
		"action": "draw", "hostKey": hostKey,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{
		"action": "shout", "hostKey": hostKey,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{
		"action": "draw", "hostKey": hostKey,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var state model.PublicRoomState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.NotNil(t, state.CurrentCard)
	assert.Equal(t, state.TotalCards-1, state.RemainingCards)
	require.Len(t, state.History, 1)
}

func TestJoinEndpoint(t *testing.T) {
	router := newTestRouter()
	resp := createRoom(t, router, nil)
	roomID := rawString(t, resp["roomId"])

	w := doJSON(t, router, "POST", "/v1/rooms/"+roomID+"/join", map[string]interface{}{"name": "   "}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/NOPE42/join", map[string]interface{}{"name": "Bo"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "POST", "/v1/rooms/"+roomID+"/join", map[string]interface{}{"name": "Bo"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var joined struct {
		State  model.PublicRoomState `json:"state"`
		Player model.RoomPlayer      `json:"player"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.Equal(t, "Bo", joined.Player.Name)
	assert.NotEmpty(t, joined.Player.ID)
	assert.Len(t, joined.State.Players, 1)
}

func TestAIQuestionsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "POST", "/v1/ai-questions", map[string]interface{}{}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cards []model.Card `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// No API key in tests: the default count of 20 caps at the curated pool.
	assert.Len(t, resp.Cards, len(deck.Questions()))

	w = doJSON(t, router, "POST", "/v1/ai-questions", map[string]interface{}{"count": 2, "level": "2"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cards, 2)
	for _, c := range resp.Cards {
		assert.Equal(t, model.Level2, c.Level)
	}
}

func TestReportEventEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "POST", "/v1/analytics/events", map[string]interface{}{"type": "card_passed"}, "")
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, router, "POST", "/v1/analytics/events", map[string]interface{}{"type": "card_eaten"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "GET", "/v1/admin/summary", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/v1/auth/login", map[string]interface{}{
		"username": "admin", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/v1/auth/login", map[string]interface{}{
		"username": "admin", "password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	// Play a little so the dashboard has something to count.
	resp := createRoom(t, router, map[string]interface{}{"hostName": "Alex"})
	roomID := rawString(t, resp["roomId"])
	hostKey := rawString(t, resp["hostKey"])
	doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{"action": "draw", "hostKey": hostKey}, "")
	doJSON(t, router, "POST", "/v1/rooms/"+roomID, map[string]interface{}{"action": "next", "hostKey": hostKey}, "")

	w = doJSON(t, router, "GET", "/v1/admin/summary", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var summary model.AnalyticsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.GreaterOrEqual(t, summary.Sessions, 1)
	assert.GreaterOrEqual(t, summary.CardsDrawn, 1)
	assert.GreaterOrEqual(t, summary.NextPlayerActions, 1)

	w = doJSON(t, router, "GET", "/v1/admin/events?limit=2", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var events struct {
		Events []model.AnalyticsEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events.Events, 2)
	// Most-recent-first: the next_player action leads.
	assert.Equal(t, model.EventNextPlayer, events.Events[0].Type)
}
