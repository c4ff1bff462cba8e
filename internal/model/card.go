package model

// CardLevel is the intensity tier of a card. Question cards use the numeric
// tiers; wildcard and go-deeper cards carry their own level value.
type CardLevel string

const (
	Level1        CardLevel = "1"
	Level2        CardLevel = "2"
	Level3        CardLevel = "3"
	LevelWildcard CardLevel = "wildcard"
	LevelGoDeeper CardLevel = "go-deeper"
)

// CardKind is the categorical tag of a card, correlated with but not
// identical to its level.
type CardKind string

const (
	KindQuestion CardKind = "question"
	KindWildcard CardKind = "wildcard"
	KindGoDeeper CardKind = "go-deeper"
)

// Card is an immutable unit of game content. Cards handed to a room are
// values, never shared mutable references.
type Card struct {
	ID    string    `json:"id" bson:"id"`
	Level CardLevel `json:"level" bson:"level"`
	Kind  CardKind  `json:"kind" bson:"kind"`
	Text  string    `json:"text" bson:"text"`
	Note  string    `json:"note,omitempty" bson:"note,omitempty"`
}

// GameMode selects which levels a deck draws from.
type GameMode string

const (
	Mode1     GameMode = "1"
	Mode2     GameMode = "2"
	Mode3     GameMode = "3"
	ModeMixed GameMode = "mixed"
)

// Valid reports whether the mode is one of the four known values.
func (m GameMode) Valid() bool {
	switch m {
	case Mode1, Mode2, Mode3, ModeMixed:
		return true
	}
	return false
}

// GameConfig describes how a room's deck is assembled. It is immutable once
// a room has been created.
type GameConfig struct {
	Mode             GameMode `json:"mode"`
	IncludeWildcards bool     `json:"includeWildcards"`
	IncludeGoDeeper  bool     `json:"includeGoDeeper"`
}

// GenerateRequest asks the card supplier for a batch of question cards.
type GenerateRequest struct {
	Count int
	Level GameMode
	Theme string
}
