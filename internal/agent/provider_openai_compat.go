package agent

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAICompatProvider implements the Provider interface for any
// OpenAI-compatible chat completion API: OpenAI itself, DeepSeek, Kimi,
// Qwen, Gemini's compat endpoint, Grok, and the like.
type OpenAICompatProvider struct {
	client       *openai.Client
	model        string
	providerName string
}

// OpenAICompatConfig holds configuration for an OpenAI-compatible provider.
type OpenAICompatConfig struct {
	ProviderName string
	APIKey       string
	BaseURL      string
	Model        string
}

type compatDefaults struct {
	baseURL string
	model   string
}

// Known OpenAI-compatible endpoints. Unlisted providers must supply an
// explicit base URL and model.
var openAICompatDefaults = map[string]compatDefaults{
	"openai":   {baseURL: "https://api.openai.com/v1", model: "gpt-4o"},
	"deepseek": {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	"kimi":     {baseURL: "https://api.moonshot.cn/v1", model: "moonshot-v1-auto"},
	"qwen":     {baseURL: "https://dashscope.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	"gemini":   {baseURL: "https://generativelanguage.googleapis.com/v1beta/openai", model: "gemini-2.0-flash"},
	"grok":     {baseURL: "https://api.x.ai/v1", model: "grok-3-mini"},
}

// NewOpenAICompatProvider creates a new OpenAI-compatible provider.
func NewOpenAICompatProvider(cfg OpenAICompatConfig) (*OpenAICompatProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	defaults := openAICompatDefaults[cfg.ProviderName]
	if cfg.Model == "" {
		cfg.Model = defaults.model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.baseURL
	}
	if cfg.Model == "" || cfg.BaseURL == "" {
		return nil, fmt.Errorf("provider %q needs an explicit base URL and model", cfg.ProviderName)
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	return &OpenAICompatProvider{
		client:       openai.NewClientWithConfig(config),
		model:        cfg.Model,
		providerName: cfg.ProviderName,
	}, nil
}

// Name returns the provider name.
func (p *OpenAICompatProvider) Name() string {
	return p.providerName
}

// Chat sends messages and returns a response.
func (p *OpenAICompatProvider) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	codec := newOpenAIToolCodec(req.Tools)

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	for _, msg := range req.Messages {
		messages = append(messages, openAIMessageFromGeneric(msg, codec))
	}

	tools := openAIToolsFromGeneric(req.Tools, codec)

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	chatReq := openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if len(tools) > 0 {
		chatReq.Tools = tools
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("%s API error: %w", p.providerName, err)
	}

	return genericResponseFromOpenAI(resp, codec), nil
}
