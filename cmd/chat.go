package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/plumeworks/siteagent/internal/agent"
	"github.com/plumeworks/siteagent/internal/config"
	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/persist"
	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat session against a stored site",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := agent.NewProviderFromSettings(agent.ProviderSettings{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}

	reg := schema.NewRegistry()
	ag, err := agent.New(agent.Config{
		Provider:      provider,
		Registry:      reg,
		MaxIterations: cfg.Agent.MaxToolIterations,
		HistoryWindow: cfg.Agent.HistoryWindow,
		MaxTokens:     cfg.Agent.MaxTokens,
	})
	if err != nil {
		return err
	}

	store, err := persist.NewStore(config.DataPath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	record, err := store.GetOrCreateSite(siteName)
	if err != nil {
		return fmt.Errorf("failed to open site %q: %w", siteName, err)
	}

	var doc *site.Document
	if record.Document != "" {
		doc, err = site.Decode([]byte(record.Document))
		if err != nil {
			logger.Warn("[Chat] Stored document for %q is unreadable, starting fresh: %v", siteName, err)
		}
	}

	history, err := loadHistory(store, record.ID, cfg.Agent.HistoryWindow)
	if err != nil {
		logger.Warn("[Chat] Failed to load history: %v", err)
	}

	banner := color.New(color.FgCyan, color.Bold)
	prompt := color.New(color.FgGreen, color.Bold)
	reply := color.New(color.FgWhite)
	note := color.New(color.FgYellow)

	banner.Printf("siteagent %s | provider: %s | site: %s\n", Version, provider.Name(), siteName)
	fmt.Println(`Type a request, or: /doc (print document), /new (discard site), /quit`)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		prompt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return nil
		case "/new":
			doc = nil
			history = nil
			if err := store.SaveDocument(record.ID, ""); err != nil {
				note.Printf("failed to clear stored document: %v\n", err)
			}
			note.Println("site cleared")
			continue
		case "/doc":
			printDocument(doc)
			continue
		}

		result, err := ag.ProcessTurn(context.Background(), line, doc, history)
		doc = result.Document
		if err != nil {
			note.Printf("error: %v\n", err)
			persistDocument(store, record.ID, doc)
			continue
		}

		for _, inv := range result.ToolsUsed {
			mark := "+"
			if !inv.Success {
				mark = "!"
			}
			note.Printf("  [%s] %s: %s\n", mark, inv.Name, inv.Message)
		}
		reply.Println(result.Message)

		history = append(history,
			agent.Message{Role: "user", Content: line},
			agent.Message{Role: "assistant", Content: result.Message},
		)

		persistDocument(store, record.ID, doc)
		persistTurns(store, record.ID, line, result)
	}

	return scanner.Err()
}

func loadHistory(store *persist.Store, siteID int64, window int) ([]agent.Message, error) {
	turns, err := store.GetTurns(siteID, window)
	if err != nil {
		return nil, err
	}
	messages := make([]agent.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, agent.Message{Role: turn.Role, Content: turn.Content})
	}
	return messages, nil
}

func printDocument(doc *site.Document) {
	if doc == nil {
		fmt.Println("(no site exists yet)")
		return
	}
	data, err := doc.Encode()
	if err != nil {
		fmt.Printf("failed to encode document: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func persistDocument(store *persist.Store, siteID int64, doc *site.Document) {
	if doc == nil {
		return
	}
	data, err := doc.Encode()
	if err != nil {
		logger.Warn("[Chat] Failed to encode document: %v", err)
		return
	}
	if err := store.SaveDocument(siteID, string(data)); err != nil {
		logger.Warn("[Chat] Failed to save document: %v", err)
	}
}

func persistTurns(store *persist.Store, siteID int64, userLine string, result agent.TurnResult) {
	if err := store.AddTurn(siteID, persist.Turn{Role: "user", Content: userLine}); err != nil {
		logger.Warn("[Chat] Failed to persist user turn: %v", err)
		return
	}

	toolCalls := make([]persist.TurnToolCall, 0, len(result.ToolsUsed))
	for _, inv := range result.ToolsUsed {
		toolCalls = append(toolCalls, persist.TurnToolCall{
			Name:    inv.Name,
			Success: inv.Success,
			Message: inv.Message,
		})
	}
	err := store.AddTurn(siteID, persist.Turn{
		Role:      "assistant",
		Content:   result.Message,
		ToolCalls: toolCalls,
	})
	if err != nil {
		logger.Warn("[Chat] Failed to persist assistant turn: %v", err)
	}
}
