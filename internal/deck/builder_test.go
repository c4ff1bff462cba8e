package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"dumbuddy/internal/model"
)

func ids(cards []model.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	sort.Strings(out)
	return out
}

func TestBuildMixedWithExtras(t *testing.T) {
	cards := Build(model.GameConfig{
		Mode:             model.ModeMixed,
		IncludeWildcards: true,
		IncludeGoDeeper:  true,
	})

	// Mixed mode keeps every question plus wildcards and go-deeper cards.
	assert.Equal(t, ids(All()), ids(cards))
}

func TestBuildMixedQuestionsOnly(t *testing.T) {
	cards := Build(model.GameConfig{Mode: model.ModeMixed})

	assert.Equal(t, ids(Questions()), ids(cards))
	for _, c := range cards {
		assert.Equal(t, model.KindQuestion, c.Kind)
	}
}

func TestBuildLevelFilter(t *testing.T) {
	tests := []struct {
		name string
		mode model.GameMode
	}{
		{"level 1", model.Mode1},
		{"level 2", model.Mode2},
		{"level 3", model.Mode3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := Build(model.GameConfig{Mode: tt.mode})

			var want []model.Card
			for _, c := range All() {
				if c.Level == model.CardLevel(tt.mode) {
					want = append(want, c)
				}
			}

			assert.NotEmpty(t, cards)
			assert.Equal(t, ids(want), ids(cards))
		})
	}
}

func TestBuildAppendsWildcards(t *testing.T) {
	cards := Build(model.GameConfig{Mode: model.Mode2, IncludeWildcards: true})

	kinds := map[model.CardKind]int{}
	for _, c := range cards {
		kinds[c.Kind]++
	}
	assert.Equal(t, 5, kinds[model.KindQuestion])
	assert.Equal(t, 3, kinds[model.KindWildcard])
	assert.Zero(t, kinds[model.KindGoDeeper])
}

func TestShuffleIsPermutation(t *testing.T) {
	tests := []struct {
		name  string
		cards []model.Card
	}{
		{"empty", nil},
		{"singleton", []model.Card{{ID: "only"}}},
		{"full set", All()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ids(tt.cards)
			shuffled := make([]model.Card, len(tt.cards))
			copy(shuffled, tt.cards)

			Shuffle(shuffled)

			assert.Len(t, shuffled, len(tt.cards))
			assert.Equal(t, before, ids(shuffled))
		})
	}
}

func TestAllReturnsCopies(t *testing.T) {
	first := All()
	first[0].Text = "mutated"

	assert.NotEqual(t, "mutated", All()[0].Text)
}
