package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
	"github.com/plumeworks/siteagent/internal/tools"
)

// scriptedProvider replays canned responses and records every request.
type scriptedProvider struct {
	responses []ChatResponse
	errAt     int // 1-based call number that fails, 0 for never
	calls     int
	requests  []ChatRequest
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	p.calls++
	p.requests = append(p.requests, req)
	if p.errAt != 0 && p.calls == p.errAt {
		return ChatResponse{}, errors.New("backend unavailable")
	}
	idx := p.calls - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	return p.responses[idx], nil
}

func toolUse(id, name string, input map[string]any) ChatResponse {
	data, _ := json.Marshal(input)
	return ChatResponse{
		FinishReason: FinishToolUse,
		ToolCalls:    []ToolCall{{ID: id, Name: name, Input: data}},
	}
}

func newAgent(t *testing.T, provider Provider, maxIterations int) *Agent {
	t.Helper()
	ag, err := New(Config{
		Provider:      provider,
		Registry:      schema.NewRegistry(),
		MaxIterations: maxIterations,
	})
	if err != nil {
		t.Fatalf("agent.New failed: %v", err)
	}
	return ag
}

func startingDoc(t *testing.T) *site.Document {
	t.Helper()
	e := tools.NewExecutor(schema.NewRegistry())
	result := e.Execute(tools.ToolCreateFullSite, nil, json.RawMessage(`{
		"siteName": "Acme",
		"sections": [{"type": "hero"}]
	}`))
	if !result.Success {
		t.Fatalf("failed to build starting document: %s", result.Message)
	}
	return result.Doc
}

func TestProcessTurnExecutesToolsAndStops(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		toolUse("call_1", tools.ToolAddSection, map[string]any{"type": "cta"}),
		{FinishReason: FinishStop, Content: "Added a call-to-action section."},
	}}
	ag := newAgent(t, provider, 5)

	result, err := ag.ProcessTurn(context.Background(), "add a cta", startingDoc(t), nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if result.Message != "Added a call-to-action section." {
		t.Fatalf("unexpected final message: %q", result.Message)
	}
	if len(result.ToolsUsed) != 1 || !result.ToolsUsed[0].Success {
		t.Fatalf("unexpected tool audit: %+v", result.ToolsUsed)
	}
	if result.Document.TotalSections() != 2 {
		t.Fatalf("expected the tool call applied, got %d sections", result.Document.TotalSections())
	}
	if provider.calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", provider.calls)
	}

	// The second round must carry the tool result back to the model.
	last := provider.requests[1].Messages
	found := false
	for _, msg := range last {
		if msg.ToolResult != nil && msg.ToolResult.ToolCallID == "call_1" && !msg.ToolResult.IsError {
			found = true
		}
	}
	if !found {
		t.Fatal("tool result was not fed back to the provider")
	}
}

func TestProcessTurnRebuildsSystemPromptBetweenRounds(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		toolUse("call_1", tools.ToolAddSection, map[string]any{"type": "faq"}),
		{FinishReason: FinishStop, Content: "done"},
	}}
	ag := newAgent(t, provider, 5)

	if _, err := ag.ProcessTurn(context.Background(), "add faq", startingDoc(t), nil); err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	first := provider.requests[0].SystemPrompt
	second := provider.requests[1].SystemPrompt
	if strings.Contains(first, `"type": "faq"`) {
		t.Fatal("first prompt should not contain the not-yet-added section")
	}
	if !strings.Contains(second, `"type": "faq"`) {
		t.Fatal("second prompt must reflect the mutated document")
	}
}

func TestProcessTurnBoundsToolRounds(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		toolUse("call_x", tools.ToolListPages, nil),
	}}
	ag := newAgent(t, provider, 3)

	result, err := ag.ProcessTurn(context.Background(), "loop forever", startingDoc(t), nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if len(result.ToolsUsed) != 3 {
		t.Fatalf("expected exactly 3 tool rounds, got %d", len(result.ToolsUsed))
	}
	if provider.calls != 4 {
		t.Fatalf("expected 4 provider calls (1 + 3 rounds), got %d", provider.calls)
	}
	if result.Message == "" {
		t.Fatal("hitting the round cap must still produce a reply")
	}
}

func TestProcessTurnToolFailureIsFedBack(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		toolUse("call_1", tools.ToolAddSection, map[string]any{"type": "carousel"}),
		{FinishReason: FinishStop, Content: "that type does not exist"},
	}}
	ag := newAgent(t, provider, 5)

	doc := startingDoc(t)
	result, err := ag.ProcessTurn(context.Background(), "add a carousel", doc, nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if len(result.ToolsUsed) != 1 || result.ToolsUsed[0].Success {
		t.Fatalf("expected one failed tool call, got %+v", result.ToolsUsed)
	}
	if result.Document.TotalSections() != doc.TotalSections() {
		t.Fatal("failed tool call must not change the document")
	}

	var fedBack *ToolResult
	for _, msg := range provider.requests[1].Messages {
		if msg.ToolResult != nil {
			fedBack = msg.ToolResult
		}
	}
	if fedBack == nil || !fedBack.IsError {
		t.Fatalf("tool failure must reach the model as an error result: %+v", fedBack)
	}
}

func TestProcessTurnProviderErrorKeepsAppliedChanges(t *testing.T) {
	provider := &scriptedProvider{
		responses: []ChatResponse{
			toolUse("call_1", tools.ToolAddSection, map[string]any{"type": "cta"}),
		},
		errAt: 2,
	}
	ag := newAgent(t, provider, 5)

	result, err := ag.ProcessTurn(context.Background(), "add a cta", startingDoc(t), nil)
	if err == nil {
		t.Fatal("expected the provider error to surface")
	}
	if result.Document == nil || result.Document.TotalSections() != 2 {
		t.Fatal("changes applied before the error must survive in the returned document")
	}
	if len(result.ToolsUsed) != 1 {
		t.Fatalf("tool audit should cover the executed round, got %+v", result.ToolsUsed)
	}
}

func TestProcessTurnEmptyReplyGetsFallbackMessage(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		{FinishReason: FinishStop, Content: ""},
	}}
	ag := newAgent(t, provider, 5)

	result, err := ag.ProcessTurn(context.Background(), "hello?", startingDoc(t), nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if result.Message == "" {
		t.Fatal("an empty provider reply must be replaced with a fallback message")
	}

	provider = &scriptedProvider{responses: []ChatResponse{
		toolUse("call_1", tools.ToolAddSection, map[string]any{"type": "cta"}),
		{FinishReason: "weird_upstream_reason", Content: ""},
	}}
	ag = newAgent(t, provider, 5)

	result, err = ag.ProcessTurn(context.Background(), "add a cta", startingDoc(t), nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if result.Message == "" {
		t.Fatal("an unknown stop reason with no text must still produce a reply")
	}
	if result.Document.TotalSections() != 2 {
		t.Fatal("the applied tool call must survive the degenerate final response")
	}
}

func TestProcessTurnNoToolsNeeded(t *testing.T) {
	provider := &scriptedProvider{responses: []ChatResponse{
		{FinishReason: FinishStop, Content: "Your site has 1 section."},
	}}
	ag := newAgent(t, provider, 5)

	doc := startingDoc(t)
	result, err := ag.ProcessTurn(context.Background(), "how big is my site?", doc, nil)
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if len(result.ToolsUsed) != 0 {
		t.Fatalf("no tools should run, got %+v", result.ToolsUsed)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single provider call, got %d", provider.calls)
	}
}
