package model

import "time"

// RoomAction is one of the host-authenticated mutations on a room.
type RoomAction string

const (
	ActionDraw  RoomAction = "draw"
	ActionReset RoomAction = "reset"
	ActionNext  RoomAction = "next"
)

// Valid reports whether the action is one of the three known values.
func (a RoomAction) Valid() bool {
	switch a {
	case ActionDraw, ActionReset, ActionNext:
		return true
	}
	return false
}

// RoomPlayer is a participant in a room. Insertion order is turn order;
// players are never removed.
type RoomPlayer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// HistoryItem records one revealed card, most-recent-first in the room's
// history list.
type HistoryItem struct {
	Card       Card      `json:"card"`
	PlayerName string    `json:"playerName"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryLimit caps the room history length; oldest entries drop first.
const HistoryLimit = 50

// Room is the aggregate root for one shared game session. The registry owns
// every Room exclusively; the host key never leaves the process except in
// the create-room response.
type Room struct {
	RoomID             string        `json:"roomId"`
	HostKey            string        `json:"-"`
	Config             GameConfig    `json:"config"`
	Deck               []Card        `json:"-"`
	CurrentCardIndex   int           `json:"currentCardIndex"`
	Players            []RoomPlayer  `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	History            []HistoryItem `json:"history"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`

	// AI metadata, set when the deck came from the generator. Reset re-invokes
	// the generator with these instead of rebuilding the static deck.
	QuestionCount int    `json:"questionCount,omitempty"`
	Theme         string `json:"theme,omitempty"`
	UseAI         bool   `json:"useAI,omitempty"`
}

// PublicRoomState is the client-safe projection of a room. It deliberately
// has no host key field: polling clients must never see the credential.
type PublicRoomState struct {
	RoomID             string        `json:"roomId"`
	Config             GameConfig    `json:"config"`
	CurrentCard        *Card         `json:"currentCard"`
	RemainingCards     int           `json:"remainingCards"`
	TotalCards         int           `json:"totalCards"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	Players            []RoomPlayer  `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	History            []HistoryItem `json:"history"`

	QuestionCount int    `json:"questionCount,omitempty"`
	Theme         string `json:"theme,omitempty"`
	UseAI         bool   `json:"useAI,omitempty"`
}
