package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"dumbuddy/internal/config"
	"dumbuddy/internal/deck"
	"dumbuddy/internal/model"
)

const (
	minQuestionCount = 1
	maxQuestionCount = 80
)

// GeneratorService produces question cards, either from the external
// generator or from the built-in curated set. Generate never returns an
// error: every failure path resolves to the fallback deck.
type GeneratorService struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeneratorService creates a generator backed by the given AI config.
func NewGeneratorService(cfg *config.AIConfig) *GeneratorService {
	return &GeneratorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate returns a batch of question cards for the request. The count is
// clamped to 1-80 and the level defaults to mixed.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) []model.Card {
	req = normalizeRequest(req)

	if !s.config.IsEnabled() {
		log.Println("generator: no API key set, using built-in deck")
		return s.fallback(req)
	}

	content, err := s.callChatCompletions(ctx, req)
	if err != nil {
		log.Printf("generator: %v, using built-in deck", err)
		return s.fallback(req)
	}

	lines := usableLines(content)
	if len(lines) == 0 {
		log.Println("generator: empty response, using built-in deck")
		return s.fallback(req)
	}

	now := time.Now()
	cards := make([]model.Card, len(lines))
	for i, text := range lines {
		level := model.CardLevel(req.Level)
		if req.Level == model.ModeMixed {
			levels := []model.CardLevel{model.Level1, model.Level2, model.Level3}
			level = levels[rand.Intn(len(levels))]
		}
		cards[i] = model.Card{
			ID:    fmt.Sprintf("ai-%d-%d", now.UnixMilli(), i),
			Level: level,
			Kind:  model.KindQuestion,
			Text:  text,
			Note:  "AI-generated question",
		}
	}
	return cards
}

// fallback serves a shuffled slice of the curated question pool, filtered by
// level when one is requested. A level with no curated cards falls back to
// the whole pool so the game stays playable.
func (s *GeneratorService) fallback(req model.GenerateRequest) []model.Card {
	base := deck.Questions()

	pool := base
	if req.Level != model.ModeMixed {
		var filtered []model.Card
		for _, c := range base {
			if c.Level == model.CardLevel(req.Level) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	deck.Shuffle(pool)

	count := req.Count
	if count > len(pool) {
		count = len(pool)
	}

	cards := make([]model.Card, count)
	copy(cards, pool[:count])
	for i := range cards {
		if cards[i].Note == "" {
			cards[i].Note = "From the built-in deck"
		}
	}
	return cards
}

// callChatCompletions makes one request to the chat-completions API and
// returns the raw message content.
func (s *GeneratorService) callChatCompletions(ctx context.Context, req model.GenerateRequest) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.config.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildUserPrompt(req)},
		},
		"temperature": 0.8,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatCompletionsEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return completion.Choices[0].Message.Content, nil
}

// usableLines splits the generator output into one question per line,
// dropping code fences and other non-question noise.
func usableLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") || strings.EqualFold(line, "json") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func normalizeRequest(req model.GenerateRequest) model.GenerateRequest {
	if req.Count < minQuestionCount {
		req.Count = minQuestionCount
	}
	if req.Count > maxQuestionCount {
		req.Count = maxQuestionCount
	}
	if !req.Level.Valid() {
		req.Level = model.ModeMixed
	}
	return req
}

const systemPrompt = `You are an intimacy game writer for a consent-first, trauma-informed adult (18+) question game.
Tone: warm, caring, non-judgmental, emotionally intelligent.
NO explicit sexual content, NO graphic descriptions, NO illegal content.
Focus on feelings, boundaries, consent, vulnerability, emotional and sensual context.

Write questions similar in spirit to deep intimacy card games, but fully original.
They must be safe to read aloud in a mixed group of consenting adults.

Rules:
- English only.
- Do NOT number the questions.
- Do NOT reference any brand or game name.
- 1-2 sentences per question.
- Make each question concrete and answerable.
- Avoid clinical/therapy language and diagnoses.`

func buildUserPrompt(req model.GenerateRequest) string {
	levelLabel := fmt.Sprintf("Level %s", req.Level)
	if req.Level == model.ModeMixed {
		levelLabel = "a mix of Level 1, Level 2, and Level 3"
	}

	themeLine := ""
	if req.Theme != "" {
		themeLine = fmt.Sprintf("Theme: %s.\n", req.Theme)
	}

	return fmt.Sprintf(`Generate %d intimacy questions for %s.
%s
Return the questions as plain text, one question per line.
Do NOT add numbering, bullet points, or quotes.
Do NOT wrap the response in JSON or code fences.`, req.Count, levelLabel, themeLine)
}
