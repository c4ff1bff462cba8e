package config

import "github.com/caarlos0/env/v11"

// AIConfig holds the settings for the external question generator. The API
// key is never serialized.
type AIConfig struct {
	APIKey    string `env:"OPENAI_API_KEY" json:"-"`
	BaseURL   string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1" json:"baseUrl"`
	Model     string `env:"OPENAI_MODEL" envDefault:"gpt-4.1-mini" json:"model"`
	TimeoutMS int    `env:"OPENAI_TIMEOUT_MS" envDefault:"10000" json:"timeoutMs"`
}

// LoadAI parses the generator settings from the environment.
func LoadAI() (*AIConfig, error) {
	cfg := &AIConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsEnabled reports whether the external generator is configured. Without a
// key the supplier serves the built-in deck only.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatCompletionsEndpoint returns the full URL for the completions call.
func (c *AIConfig) ChatCompletionsEndpoint() string {
	return c.BaseURL + "/chat/completions"
}
