package coach

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeImagePayload turns a request image string into raw bytes, stripping
// a data-URI prefix ("data:image/jpeg;base64,...") when present.
func DecodeImagePayload(s string) ([]byte, error) {
	if idx := strings.Index(s, ";base64,"); idx >= 0 && strings.HasPrefix(s, "data:") {
		s = s[idx+len(";base64,"):]
	}
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty image payload")
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	return data, nil
}
