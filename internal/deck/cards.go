// Package deck holds the curated card set and the static deck builder.
package deck

import "dumbuddy/internal/model"

// builtin is the hand-authored fallback pool. Card IDs are stable; the
// admin dashboard groups draw counts by level string.
var builtin = []model.Card{
	{ID: "L1-01", Level: model.Level1, Kind: model.KindQuestion, Text: "What's a small thing someone can do that instantly turns you on?"},
	{ID: "L1-02", Level: model.Level1, Kind: model.KindQuestion, Text: "Describe your first crush in one sentence."},
	{ID: "L1-03", Level: model.Level1, Kind: model.KindQuestion, Text: "When do you feel most confident in your own skin?"},
	{ID: "L1-04", Level: model.Level1, Kind: model.KindQuestion, Text: "One thing you’d like to be told during intimacy."},
	{ID: "L1-05", Level: model.Level1, Kind: model.KindQuestion, Text: "What kind of touch do you prefer first in a romantic setting?"},

	{ID: "L2-01", Level: model.Level2, Kind: model.KindQuestion, Text: "When was your first time feeling vulnerable with someone sexually? What helped?"},
	{ID: "L2-02", Level: model.Level2, Kind: model.KindQuestion, Text: "What emotional need do you seek through physical intimacy?"},
	{ID: "L2-03", Level: model.Level2, Kind: model.KindQuestion, Text: "How do you define consent beyond a simple yes or no?"},
	{ID: "L2-04", Level: model.Level2, Kind: model.KindQuestion, Text: "Share a moment when you felt your boundaries were respected perfectly."},
	{ID: "L2-05", Level: model.Level2, Kind: model.KindQuestion, Text: "What are your non-sexual emotional needs in a relationship?"},

	{ID: "L3-01", Level: model.Level3, Kind: model.KindQuestion, Text: "Describe a sexual experience that left you deeply changed."},
	{ID: "L3-02", Level: model.Level3, Kind: model.KindQuestion, Text: "What part of your past keeps affecting your intimacy now?"},
	{ID: "L3-03", Level: model.Level3, Kind: model.KindQuestion, Text: "What do you deeply crave in intimacy that you’re afraid to ask for?"},
	{ID: "L3-04", Level: model.Level3, Kind: model.KindQuestion, Text: "How do you cope when intimacy triggers emotional pain?"},
	{ID: "L3-05", Level: model.Level3, Kind: model.KindQuestion, Text: "What would you tell your younger sexual self to protect them?"},

	{ID: "W-01", Level: model.LevelWildcard, Kind: model.KindWildcard, Text: "Swap one answered card with someone of your choice and explain why.", Note: "Both of you share how that card landed."},
	{ID: "W-02", Level: model.LevelWildcard, Kind: model.KindWildcard, Text: "Ask any player a follow-up question from any previous card.", Note: "They can pass if it’s too much."},
	{ID: "W-03", Level: model.LevelWildcard, Kind: model.KindWildcard, Text: "“Pause & Share”: each player names one boundary they want respected for the next three turns."},

	{ID: "GD-01", Level: model.LevelGoDeeper, Kind: model.KindGoDeeper, Text: "Share the earliest memory that shaped your idea of desire.", Note: "One gentle clarifying question is allowed."},
	{ID: "GD-02", Level: model.LevelGoDeeper, Kind: model.KindGoDeeper, Text: "Describe a moment of tenderness you cherish. Then name one behaviour you’d like more often."},
}

// All returns a copy of the curated set. Callers get fresh card values so
// the builtin pool is never aliased by a room's deck.
func All() []model.Card {
	cards := make([]model.Card, len(builtin))
	copy(cards, builtin)
	return cards
}

// Questions returns the question cards of the curated set.
func Questions() []model.Card {
	var cards []model.Card
	for _, c := range builtin {
		if c.Kind == model.KindQuestion {
			cards = append(cards, c)
		}
	}
	return cards
}
