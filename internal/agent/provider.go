// Package agent drives the multi-turn conversation between the user, a
// hosted language model, and the site mutation tool set.
package agent

import (
	"context"
	"encoding/json"
)

// Message is one conversation message in provider-neutral form.
type Message struct {
	Role       string // "user" | "assistant"
	Content    string
	ToolCalls  []ToolCall  // assistant messages that requested tools
	ToolResult *ToolResult // user messages carrying a tool result
}

// ToolCall is one tool invocation the model requested.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

// ToolResult is the outcome of a tool call, fed back to the model.
type ToolResult struct {
	ToolCallID string
	Content    string
	IsError    bool
}

// Tool describes one callable tool to the model.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// ChatRequest is one round trip to the model.
type ChatRequest struct {
	Messages     []Message
	SystemPrompt string
	Tools        []Tool
	MaxTokens    int
}

// Finish reasons in provider-neutral form. Anything else is treated as
// "stop with no further tool execution".
const (
	FinishStop    = "stop"
	FinishToolUse = "tool_use"
)

// ChatResponse is the model's reply.
type ChatResponse struct {
	Content      string
	ToolCalls    []ToolCall
	FinishReason string
}

// Provider abstracts a hosted tool-calling chat completion API. Any provider
// implementing this contract is substitutable.
type Provider interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
