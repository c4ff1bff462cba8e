package game

import "dumbuddy/internal/model"

// project derives the client-safe snapshot of a room. It copies the player
// and history slices so pollers never alias registry-owned state, and it
// never includes the host key. Callers must hold the room lock.
func project(room *model.Room) model.PublicRoomState {
	var current *model.Card
	if room.CurrentCardIndex >= 0 && room.CurrentCardIndex < len(room.Deck) {
		card := room.Deck[room.CurrentCardIndex]
		current = &card
	}

	remaining := len(room.Deck)
	if room.CurrentCardIndex >= 0 {
		remaining = len(room.Deck) - (room.CurrentCardIndex + 1)
		if remaining < 0 {
			remaining = 0
		}
	}

	players := make([]model.RoomPlayer, len(room.Players))
	copy(players, room.Players)

	history := make([]model.HistoryItem, len(room.History))
	copy(history, room.History)

	return model.PublicRoomState{
		RoomID:             room.RoomID,
		Config:             room.Config,
		CurrentCard:        current,
		RemainingCards:     remaining,
		TotalCards:         len(room.Deck),
		CreatedAt:          room.CreatedAt,
		UpdatedAt:          room.UpdatedAt,
		Players:            players,
		CurrentPlayerIndex: room.CurrentPlayerIndex,
		History:            history,
		QuestionCount:      room.QuestionCount,
		Theme:              room.Theme,
		UseAI:              room.UseAI,
	}
}
