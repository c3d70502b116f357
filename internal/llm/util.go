package llm

import "strings"

// CleanJSONBlock strips markdown code fences and any preamble text from a
// model response so the remainder parses as JSON.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble before a bare JSON object ("Here is the JSON: {...}").
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		if start := strings.IndexAny(text, "{["); start >= 0 {
			if end := strings.LastIndexAny(text, "}]"); end > start {
				return text[start : end+1]
			}
		}
	}

	return text
}
