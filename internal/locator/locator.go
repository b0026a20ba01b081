// Package locator finds the WebVTT file that sits next to a media file.
package locator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const subtitleExt = ".vtt"

var (
	ErrInvalidPath = errors.New("invalid media path")
	ErrNotFound    = errors.New("subtitle file not found")
)

// Candidates lists the subtitle paths tried for mediaPath, in order:
// the extension replaced by .vtt, then .vtt appended to the full name.
func Candidates(mediaPath string) ([]string, error) {
	if mediaPath == "" {
		return nil, ErrInvalidPath
	}

	clean := filepath.Clean(mediaPath)
	dir, name := filepath.Split(clean)
	if name == "" || name == "." || name == ".." {
		return nil, ErrInvalidPath
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		// ".mp4" is a stem without an extension
		stem = name
	}

	return []string{
		filepath.Join(dir, stem+subtitleExt),
		filepath.Join(dir, name+subtitleExt),
	}, nil
}

// Locate returns the first of Candidates that exists on disk.
func Locate(mediaPath string) (string, error) {
	candidates, err := Candidates(mediaPath)
	if err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
