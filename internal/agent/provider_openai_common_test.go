package agent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/plumeworks/siteagent/internal/logger"
)

func TestOpenAIToolCodecRoundTrip(t *testing.T) {
	tools := []Tool{
		{Name: "update_theme"},
		{Name: "site.create full"},
		{Name: "site create-full"},
	}

	codec := newOpenAIToolCodec(tools)
	for _, tool := range tools {
		apiName := codec.encode(tool.Name)
		if !openAIToolNamePattern.MatchString(apiName) {
			t.Fatalf("encoded tool name is invalid: %q -> %q", tool.Name, apiName)
		}
		if decoded := codec.decode(apiName); decoded != tool.Name {
			t.Fatalf("decode mismatch: got %q want %q", decoded, tool.Name)
		}
	}
}

func TestOpenAIMessageConversion(t *testing.T) {
	codec := newOpenAIToolCodec([]Tool{{Name: "add_section"}})

	assistant := openAIMessageFromGeneric(Message{
		Role:    "assistant",
		Content: "adding",
		ToolCalls: []ToolCall{
			{ID: "call_1", Name: "add_section", Input: json.RawMessage(`{"type":"hero"}`)},
		},
	}, codec)
	if assistant.Role != openai.ChatMessageRoleAssistant {
		t.Fatalf("unexpected role %q", assistant.Role)
	}
	if len(assistant.ToolCalls) != 1 || assistant.ToolCalls[0].Function.Arguments != `{"type":"hero"}` {
		t.Fatalf("tool call not converted: %+v", assistant.ToolCalls)
	}

	result := openAIMessageFromGeneric(Message{
		Role:       "user",
		ToolResult: &ToolResult{ToolCallID: "call_1", Content: "Added hero section."},
	}, codec)
	if result.Role != openai.ChatMessageRoleTool || result.ToolCallID != "call_1" {
		t.Fatalf("tool result not converted: %+v", result)
	}

	empty := openAIMessageFromGeneric(Message{
		Role:       "user",
		ToolResult: &ToolResult{ToolCallID: "call_2"},
	}, codec)
	if empty.Content != "(empty)" {
		t.Fatalf("empty tool result should be padded, got %q", empty.Content)
	}
}

func TestGenericResponseFromOpenAI(t *testing.T) {
	codec := newOpenAIToolCodec([]Tool{{Name: "list_pages"}})
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			FinishReason: openai.FinishReasonToolCalls,
			Message: openai.ChatCompletionMessage{
				ToolCalls: []openai.ToolCall{{
					ID:       "call_9",
					Function: openai.FunctionCall{Name: "list_pages", Arguments: `{}`},
				}},
			},
		}},
	}

	out := genericResponseFromOpenAI(resp, codec)
	if out.FinishReason != FinishToolUse {
		t.Fatalf("unexpected finish reason %q", out.FinishReason)
	}
	if len(out.ToolCalls) != 1 || out.ToolCalls[0].Name != "list_pages" {
		t.Fatalf("tool calls not decoded: %+v", out.ToolCalls)
	}

	if out := genericResponseFromOpenAI(openai.ChatCompletionResponse{}, codec); out.FinishReason != FinishStop {
		t.Fatal("empty responses should map to a stop")
	}
}

func TestUnknownFinishReasonIsLoggedAndStops(t *testing.T) {
	logFile, err := os.Create(filepath.Join(t.TempDir(), "agent.log"))
	if err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}
	logger.SetOutput(logFile)
	defer logger.SetOutput(os.Stderr)

	codec := newOpenAIToolCodec(nil)
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			FinishReason: "model_overloaded",
			Message:      openai.ChatCompletionMessage{Content: "partial"},
		}},
	}
	out := genericResponseFromOpenAI(resp, codec)
	if out.FinishReason != FinishStop {
		t.Fatalf("unknown finish reason should map to a stop, got %q", out.FinishReason)
	}

	logged, err := os.ReadFile(logFile.Name())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(logged), "model_overloaded") {
		t.Fatalf("unknown finish reason was not logged: %q", logged)
	}
}
