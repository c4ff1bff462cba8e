// Package game implements the in-memory room registry and the
// host-authenticated turn/deck state machine behind the shared-deck mode.
package game

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dumbuddy/internal/deck"
	"dumbuddy/internal/model"
)

var (
	// ErrRoomNotFound means the room code does not exist in the registry.
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidHostKey means the supplied credential does not match the room's.
	ErrInvalidHostKey = errors.New("invalid host key")
	// ErrEmptyDeck means room creation produced a deck with no cards.
	ErrEmptyDeck = errors.New("deck has no cards")
)

// DeckSupplier produces generated question cards. Implementations never
// return an error; every failure path resolves to a fallback deck, which
// may be empty.
type DeckSupplier interface {
	Generate(ctx context.Context, req model.GenerateRequest) []model.Card
}

type roomEntry struct {
	mu    sync.Mutex
	state model.Room
}

// Registry is the authoritative in-process store of all rooms, keyed by room
// code. Each room carries its own mutex so actions on one room never block
// another; rooms live for the life of the process.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[string]*roomEntry
	supplier DeckSupplier
}

// NewRegistry creates an empty registry. The supplier is used for AI-mode
// deck regeneration on reset.
func NewRegistry(supplier DeckSupplier) *Registry {
	return &Registry{
		rooms:    make(map[string]*roomEntry),
		supplier: supplier,
	}
}

// CreateOptions carries the AI-path extras for room creation.
type CreateOptions struct {
	// Deck, when non-nil, is used as-is instead of the static builder output.
	Deck          []model.Card
	QuestionCount int
	Theme         string
	UseAI         bool
}

// CreatedRoom is the result of a successful room creation. This is the only
// place the host key leaves the registry.
type CreatedRoom struct {
	RoomID     string
	HostKey    string
	State      model.PublicRoomState
	HostPlayer *model.RoomPlayer
}

// Create allocates a fresh room code and host key, builds the deck (unless
// one is pre-supplied), registers the host as the first player when a name
// is given, and stores the room.
func (r *Registry) Create(config model.GameConfig, hostName string, opts *CreateOptions) (*CreatedRoom, error) {
	var cards []model.Card
	if opts != nil && opts.Deck != nil {
		cards = opts.Deck
	} else {
		cards = deck.Build(config)
	}
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	now := time.Now()
	state := model.Room{
		Config:           config,
		Deck:             cards,
		CurrentCardIndex: -1,
		Players:          []model.RoomPlayer{},
		History:          []model.HistoryItem{},
		CreatedAt:        now,
		UpdatedAt:        now,
		HostKey:          newHostKey(now),
	}
	if opts != nil {
		state.QuestionCount = opts.QuestionCount
		state.Theme = opts.Theme
		state.UseAI = opts.UseAI
	}

	var hostPlayer *model.RoomPlayer
	if name := strings.TrimSpace(hostName); name != "" {
		p := model.RoomPlayer{ID: newPlayerID(), Name: name, JoinedAt: now}
		state.Players = append(state.Players, p)
		hostPlayer = &p
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.allocateCodeLocked()
	if err != nil {
		return nil, err
	}
	state.RoomID = code

	entry := &roomEntry{state: state}
	r.rooms[code] = entry

	return &CreatedRoom{
		RoomID:     code,
		HostKey:    state.HostKey,
		State:      project(&entry.state),
		HostPlayer: hostPlayer,
	}, nil
}

// Get returns the public snapshot of a room.
func (r *Registry) Get(roomID string) (model.PublicRoomState, error) {
	entry := r.lookup(roomID)
	if entry == nil {
		return model.PublicRoomState{}, ErrRoomNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return project(&entry.state), nil
}

// Join appends a new player to the room's roster. A blank name defaults to
// "Player". Joining mid-game never changes whose turn it is.
func (r *Registry) Join(roomID, name string) (model.PublicRoomState, model.RoomPlayer, error) {
	entry := r.lookup(roomID)
	if entry == nil {
		return model.PublicRoomState{}, model.RoomPlayer{}, ErrRoomNotFound
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "Player"
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	player := model.RoomPlayer{ID: newPlayerID(), Name: trimmed, JoinedAt: now}
	entry.state.Players = append(entry.state.Players, player)
	entry.state.UpdatedAt = now

	return project(&entry.state), player, nil
}

func (r *Registry) lookup(roomID string) *roomEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[roomID]
}

const (
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	roomCodeLen      = 6
)

// allocateCodeLocked draws 6-char codes until one is free. Callers must hold
// the registry write lock so the returned code stays unclaimed.
func (r *Registry) allocateCodeLocked() (string, error) {
	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, roomCodeLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, roomCodeLen)
		for i := range code {
			code[i] = roomCodeAlphabet[int(b[i])%len(roomCodeAlphabet)]
		}

		if _, exists := r.rooms[string(code)]; !exists {
			return string(code), nil
		}
	}

	return "", fmt.Errorf("failed to allocate a unique room code")
}

// newHostKey builds the room credential from the creation time plus random
// bits.
func newHostKey(now time.Time) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", now.UnixNano())
	}
	return fmt.Sprintf("%x-%x", now.UnixMilli(), b)
}

func newPlayerID() string {
	return uuid.NewString()[:8]
}
