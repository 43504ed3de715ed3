package agent

// DefaultHistoryWindow bounds how many conversation messages are replayed to
// the model each turn.
const DefaultHistoryWindow = 20

// trimHistory drops the oldest messages beyond the window. The cut always
// lands on a plain user message so that no assistant tool call is replayed
// without its paired result, which providers reject.
func trimHistory(messages []Message, window int) []Message {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if len(messages) <= window {
		return messages
	}

	start := len(messages) - window
	for start < len(messages) {
		m := messages[start]
		if m.Role == "user" && m.ToolResult == nil {
			break
		}
		start++
	}
	return messages[start:]
}
