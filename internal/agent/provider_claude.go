package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/plumeworks/siteagent/internal/logger"
)

const claudeDefaultModel = "claude-sonnet-4-20250514"

// ClaudeProvider implements the Provider interface for Anthropic's Messages API.
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// ClaudeConfig holds Claude provider configuration.
type ClaudeConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewClaudeProvider creates a new Claude provider.
func NewClaudeProvider(cfg ClaudeConfig) (*ClaudeProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = claudeDefaultModel
	}

	var opts []anthropic.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
	}

	return &ClaudeProvider{
		client: anthropic.NewClient(cfg.APIKey, opts...),
		model:  cfg.Model,
	}, nil
}

// Name returns the provider name.
func (p *ClaudeProvider) Name() string {
	return "claude"
}

// Chat sends messages and returns a response.
func (p *ClaudeProvider) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	messages := make([]anthropic.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, anthropicMessageFromGeneric(msg))
	}

	tools := make([]anthropic.ToolDefinition, 0, len(req.Tools))
	for _, tool := range req.Tools {
		tools = append(tools, anthropic.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	chatReq := anthropic.MessagesRequest{
		Model:     anthropic.Model(p.model),
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if req.SystemPrompt != "" {
		chatReq.System = req.SystemPrompt
	}
	if len(tools) > 0 {
		chatReq.Tools = tools
	}

	resp, err := p.client.CreateMessages(ctx, chatReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("anthropic API error: %w", err)
	}

	return genericResponseFromAnthropic(resp), nil
}

func anthropicMessageFromGeneric(msg Message) anthropic.Message {
	switch msg.Role {
	case "assistant":
		var content []anthropic.MessageContent
		if msg.Content != "" {
			content = append(content, anthropic.NewTextMessageContent(msg.Content))
		}
		for _, tc := range msg.ToolCalls {
			content = append(content, anthropic.MessageContent{
				Type: anthropic.MessagesContentTypeToolUse,
				MessageContentToolUse: &anthropic.MessageContentToolUse{
					ID:    tc.ID,
					Name:  tc.Name,
					Input: tc.Input,
				},
			})
		}
		if len(content) == 0 {
			content = append(content, anthropic.NewTextMessageContent("(empty)"))
		}
		return anthropic.Message{Role: anthropic.RoleAssistant, Content: content}

	default:
		if msg.ToolResult != nil {
			result := msg.ToolResult.Content
			if result == "" {
				result = "(empty)"
			}
			return anthropic.Message{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewToolResultMessageContent(msg.ToolResult.ToolCallID, result, msg.ToolResult.IsError),
				},
			}
		}
		return anthropic.NewUserTextMessage(msg.Content)
	}
}

func genericResponseFromAnthropic(resp anthropic.MessagesResponse) ChatResponse {
	out := ChatResponse{FinishReason: FinishStop}

	for _, block := range resp.Content {
		switch block.Type {
		case anthropic.MessagesContentTypeText:
			out.Content += block.GetText()
		case anthropic.MessagesContentTypeToolUse:
			if block.MessageContentToolUse == nil {
				continue
			}
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:    block.MessageContentToolUse.ID,
				Name:  block.MessageContentToolUse.Name,
				Input: json.RawMessage(block.MessageContentToolUse.Input),
			})
		}
	}

	switch resp.StopReason {
	case anthropic.MessagesStopReasonToolUse:
		out.FinishReason = FinishToolUse
	case anthropic.MessagesStopReasonEndTurn, anthropic.MessagesStopReasonStopSequence, anthropic.MessagesStopReasonMaxTokens:
		out.FinishReason = FinishStop
	default:
		logger.Warn("[Agent] Unknown stop reason %q, treating as stop", resp.StopReason)
		out.FinishReason = string(resp.StopReason)
	}

	return out
}
