package persist

import (
	"encoding/json"
	"time"
)

// Site is one named site with its current document.
type Site struct {
	ID        int64
	Name      string
	Document  string // JSON site document, empty until the first save
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Turn is one conversation turn against a site.
type Turn struct {
	ID        int64
	SiteID    int64
	Role      string // "user" | "assistant"
	Content   string
	ToolCalls []TurnToolCall
	CreatedAt time.Time
}

// TurnToolCall records one tool the assistant invoked during a turn.
type TurnToolCall struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// toJSON serializes an object to a JSON string
func toJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// fromJSON parses JSON string into an object
func fromJSON(data string, v interface{}) error {
	if data == "" || data == "[]" || data == "null" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}
