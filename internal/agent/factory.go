package agent

import "strings"

// ProviderSettings is the provider selection a deployment supplies.
type ProviderSettings struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// NewProviderFromSettings builds a Provider for the named backend. Claude is
// the default; every other name goes through the OpenAI-compatible adapter.
func NewProviderFromSettings(s ProviderSettings) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case "", "claude", "anthropic":
		return NewClaudeProvider(ClaudeConfig{
			APIKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		})
	default:
		return NewOpenAICompatProvider(OpenAICompatConfig{
			ProviderName: strings.ToLower(strings.TrimSpace(s.Provider)),
			APIKey:       s.APIKey,
			BaseURL:      s.BaseURL,
			Model:        s.Model,
		})
	}
}
