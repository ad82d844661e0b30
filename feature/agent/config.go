package agent

// Config holds configuration for the LLM agent.
type Config struct {
	// APIKey authenticates against the completion endpoint. The agent is disabled without it.
	APIKey string `mapstructure:"api_key" default:"" env:"GOOGLE_API_KEY"`
	// Model is the chat model name.
	Model string `mapstructure:"model" default:"gemini-1.5-flash"`
	// BaseURL is an OpenAI-compatible API root.
	BaseURL string `mapstructure:"base_url" default:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	// MaxTurns bounds the completion round trips of a single message.
	MaxTurns int `mapstructure:"max_turns" default:"8"`
}

// DefaultMaxTurns applies when MaxTurns is not positive.
const DefaultMaxTurns = 8

// Enabled reports whether an API key is configured.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

func (c Config) maxTurns() int {
	if c.MaxTurns <= 0 {
		return DefaultMaxTurns
	}
	return c.MaxTurns
}
