package agent

import (
	"context"
	"fmt"

	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
	"github.com/plumeworks/siteagent/internal/tools"
)

// DefaultMaxToolIterations bounds how many model round trips one user turn
// may spend on tool calls.
const DefaultMaxToolIterations = 5

// Config configures an Agent.
type Config struct {
	Provider      Provider
	Registry      *schema.Registry
	MaxIterations int // tool rounds per turn, default DefaultMaxToolIterations
	HistoryWindow int // replayed messages per turn, default DefaultHistoryWindow
	MaxTokens     int
}

// Agent runs the conversation loop: it sends the user's message plus the
// current document to the model, executes the tool calls the model requests,
// and repeats until the model stops asking for tools or the round cap hits.
type Agent struct {
	provider Provider
	registry *schema.Registry
	executor *tools.Executor
	specs    []Tool

	maxIterations int
	historyWindow int
	maxTokens     int
}

// ToolInvocation records one executed tool call for the caller's audit trail.
type ToolInvocation struct {
	Name    string
	Success bool
	Message string
}

// TurnResult is the outcome of one user turn.
type TurnResult struct {
	Message   string         // the model's final reply
	Document  *site.Document // the working document after all tool calls
	ToolsUsed []ToolInvocation
}

// New creates an Agent.
func New(cfg Config) (*Agent, error) {
	if cfg.Provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = schema.NewRegistry()
	}

	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxToolIterations
	}
	historyWindow := cfg.HistoryWindow
	if historyWindow <= 0 {
		historyWindow = DefaultHistoryWindow
	}

	specs := make([]Tool, 0)
	for _, spec := range tools.Catalog(reg) {
		specs = append(specs, Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: spec.InputSchema,
		})
	}

	return &Agent{
		provider:      cfg.Provider,
		registry:      reg,
		executor:      tools.NewExecutor(reg),
		specs:         specs,
		maxIterations: maxIterations,
		historyWindow: historyWindow,
		maxTokens:     cfg.MaxTokens,
	}, nil
}

// Registry returns the schema registry the agent mutates against.
func (a *Agent) Registry() *schema.Registry {
	return a.registry
}

// ProcessTurn runs one user turn against the given document. history holds
// prior turns oldest-first; the returned document reflects every successful
// tool call even when the provider later fails.
func (a *Agent) ProcessTurn(ctx context.Context, userMessage string, doc *site.Document, history []Message) (TurnResult, error) {
	working := doc
	messages := append(trimHistory(history, a.historyWindow), Message{Role: "user", Content: userMessage})
	var toolsUsed []ToolInvocation

	logger.Debug("[Agent] Processing turn (%d history messages)", len(messages)-1)

	resp, err := a.provider.Chat(ctx, ChatRequest{
		Messages:     messages,
		SystemPrompt: BuildSystemPrompt(a.registry, working),
		Tools:        a.specs,
		MaxTokens:    a.maxTokens,
	})
	if err != nil {
		return TurnResult{Document: working, ToolsUsed: toolsUsed}, fmt.Errorf("AI error: %w", err)
	}

	for round := 0; round < a.maxIterations; round++ {
		if resp.FinishReason != FinishToolUse {
			break
		}

		toolResults := make([]ToolResult, 0, len(resp.ToolCalls))
		for _, tc := range resp.ToolCalls {
			result := a.executor.Execute(tc.Name, working, tc.Input)
			if result.Success {
				working = a.settle(result.Doc)
			} else {
				logger.Warn("[Agent] Tool %s failed (round %d/%d): %s", tc.Name, round+1, a.maxIterations, result.Message)
			}
			toolsUsed = append(toolsUsed, ToolInvocation{
				Name:    tc.Name,
				Success: result.Success,
				Message: result.Message,
			})
			toolResults = append(toolResults, ToolResult{
				ToolCallID: tc.ID,
				Content:    result.Message,
				IsError:    !result.Success,
			})
		}

		messages = append(messages, Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for i := range toolResults {
			messages = append(messages, Message{
				Role:       "user",
				ToolResult: &toolResults[i],
			})
		}

		resp, err = a.provider.Chat(ctx, ChatRequest{
			Messages:     messages,
			SystemPrompt: BuildSystemPrompt(a.registry, working),
			Tools:        a.specs,
			MaxTokens:    a.maxTokens,
		})
		if err != nil {
			return TurnResult{Document: working, ToolsUsed: toolsUsed}, fmt.Errorf("AI error: %w", err)
		}
	}

	message := resp.Content
	if resp.FinishReason == FinishToolUse {
		logger.Warn("[Agent] Tool loop hit max rounds (%d), forcing stop", a.maxIterations)
	}
	if message == "" {
		if resp.FinishReason != FinishToolUse {
			logger.Warn("[Agent] Provider returned an empty reply (finish reason %q)", resp.FinishReason)
		}
		if len(toolsUsed) > 0 {
			message = "I've applied the changes so far; let me know if you'd like me to continue."
		} else {
			message = "I couldn't come up with a reply for that; please try rephrasing your request."
		}
	}

	return TurnResult{Message: message, Document: working, ToolsUsed: toolsUsed}, nil
}

// settle normalizes a freshly mutated document. Tools keep documents valid on
// their own; the sanitize pass covers model-supplied content that slipped
// past a merge, so the working document the next round sees is always valid.
func (a *Agent) settle(doc *site.Document) *site.Document {
	if doc == nil {
		return nil
	}
	report := site.Validate(a.registry, doc)
	if report.Valid {
		return doc
	}
	for _, e := range report.Errors {
		logger.Debug("[Agent] Post-tool validation: %s: %s", e.Path, e.Message)
	}
	return site.Sanitize(a.registry, doc)
}
