package oracle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Model output rarely arrives as clean JSON: providers wrap it in markdown
// fences or pad it with prose. The helpers here locate and decode the first
// JSON object in free text so the typed interfaces upstream never deal with
// repair logic.

// DecodeExtraction parses a vision model's text reply into an Extraction.
func DecodeExtraction(text string) (Extraction, error) {
	var ex Extraction
	raw, err := firstJSONObject(text)
	if err != nil {
		return ex, err
	}
	if err := json.Unmarshal([]byte(raw), &ex); err != nil {
		return ex, fmt.Errorf("malformed extraction payload: %w", err)
	}
	return ex, nil
}

// DecodeFeedback parses a language model's text reply into Feedback. Replies
// that contain no JSON at all are treated as plain coaching lines rather
// than rejected.
func DecodeFeedback(text string) (Feedback, error) {
	raw, err := firstJSONObject(text)
	if err != nil {
		lines := nonEmptyLines(text)
		if len(lines) == 0 {
			return Feedback{}, fmt.Errorf("empty feedback reply")
		}
		return Feedback{GoodPoints: lines}, nil
	}

	var fb Feedback
	if err := json.Unmarshal([]byte(raw), &fb); err != nil {
		return Feedback{}, fmt.Errorf("malformed feedback payload: %w", err)
	}
	return fb, nil
}

// firstJSONObject returns the first balanced top-level JSON object embedded
// in text, stripping a markdown code fence if present.
func firstJSONObject(text string) (string, error) {
	text = stripFence(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in reply")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = inString
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in reply")
}

// stripFence removes a ```json ... ``` (or bare ```) wrapper.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
