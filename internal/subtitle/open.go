package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Open parses a subtitle file, choosing the parser from its extension.
func Open(path string) ([]Cue, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return ParseFile(path)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}
