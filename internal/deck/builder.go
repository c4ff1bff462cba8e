package deck

import (
	"math/rand"

	"dumbuddy/internal/model"
)

// Build assembles a shuffled deck from the curated set for the given config.
// Mixed mode keeps every question card; a numeric mode keeps only that level.
// Wildcard and go-deeper cards are appended when enabled, then the whole
// concatenation is shuffled.
func Build(config model.GameConfig) []model.Card {
	base := All()
	var cards []model.Card

	if config.Mode == model.ModeMixed {
		for _, c := range base {
			if c.Kind == model.KindQuestion {
				cards = append(cards, c)
			}
		}
	} else {
		for _, c := range base {
			if c.Level == model.CardLevel(config.Mode) {
				cards = append(cards, c)
			}
		}
	}

	if config.IncludeWildcards {
		for _, c := range base {
			if c.Kind == model.KindWildcard {
				cards = append(cards, c)
			}
		}
	}

	if config.IncludeGoDeeper {
		for _, c := range base {
			if c.Kind == model.KindGoDeeper {
				cards = append(cards, c)
			}
		}
	}

	Shuffle(cards)
	return cards
}

// Shuffle permutes cards in place with a Fisher-Yates walk, so every ordering
// is equally likely given an unbiased source.
func Shuffle(cards []model.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
