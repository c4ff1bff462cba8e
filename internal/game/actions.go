package game

import (
	"context"
	"fmt"
	"time"

	"dumbuddy/internal/deck"
	"dumbuddy/internal/model"
)

// ActionResult is the outcome of a successful room action. Drawn is set only
// when a draw actually revealed a new card, not on a saturated draw.
type ActionResult struct {
	State model.PublicRoomState
	Drawn *model.Card
}

// Apply validates the host credential and runs one action against the room.
// Authorization failures leave the room untouched and are reported as
// ErrInvalidHostKey, distinct from ErrRoomNotFound.
func (r *Registry) Apply(ctx context.Context, roomID, hostKey string, action model.RoomAction) (*ActionResult, error) {
	entry := r.lookup(roomID)
	if entry == nil {
		return nil, ErrRoomNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := &entry.state
	if room.HostKey != hostKey {
		return nil, ErrInvalidHostKey
	}

	now := time.Now()
	result := &ActionResult{}

	switch action {
	case model.ActionDraw:
		result.Drawn = draw(room, now)
	case model.ActionReset:
		r.reset(ctx, room, now)
	case model.ActionNext:
		advanceTurn(room, now)
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}

	result.State = project(room)
	return result, nil
}

// draw advances the cursor and prepends a history entry. At the end of the
// deck the action is a successful no-op.
func draw(room *model.Room, now time.Time) *model.Card {
	if room.CurrentCardIndex >= len(room.Deck)-1 {
		return nil
	}

	room.CurrentCardIndex++
	room.UpdatedAt = now

	card := room.Deck[room.CurrentCardIndex]

	playerName := "Player"
	if len(room.Players) > 0 && room.CurrentPlayerIndex >= 0 && room.CurrentPlayerIndex < len(room.Players) {
		playerName = room.Players[room.CurrentPlayerIndex].Name
	}

	item := model.HistoryItem{Card: card, PlayerName: playerName, Timestamp: now}
	room.History = append([]model.HistoryItem{item}, room.History...)
	if len(room.History) > model.HistoryLimit {
		room.History = room.History[:model.HistoryLimit]
	}

	return &card
}

// reset rewinds the cursor and clears history. AI rooms ask the supplier for
// a brand-new deck; if that comes back empty the previous deck is kept so the
// room is never left deckless. Static rooms rebuild from the config with a
// fresh shuffle.
func (r *Registry) reset(ctx context.Context, room *model.Room, now time.Time) {
	room.CurrentCardIndex = -1
	room.History = []model.HistoryItem{}
	room.UpdatedAt = now

	if room.UseAI && r.supplier != nil {
		count := room.QuestionCount
		if count <= 0 {
			count = len(room.Deck)
		}
		cards := r.supplier.Generate(ctx, model.GenerateRequest{
			Count: count,
			Level: room.Config.Mode,
			Theme: room.Theme,
		})
		if len(cards) > 0 {
			room.Deck = cards
		}
		return
	}

	room.Deck = deck.Build(room.Config)
}

// advanceTurn moves to the next player, wrapping around the roster. With no
// players it succeeds without doing anything.
func advanceTurn(room *model.Room, now time.Time) {
	if len(room.Players) == 0 {
		return
	}
	room.CurrentPlayerIndex = (room.CurrentPlayerIndex + 1) % len(room.Players)
	room.UpdatedAt = now
}
