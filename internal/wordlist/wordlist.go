// Package wordlist supplies the word corpus for memorable passwords. The
// corpus is loaded here, by the caller, and handed to the generator; the
// generator itself never falls back to a built-in list.
package wordlist

import (
	"fmt"
	"os"
	"strings"

	_ "embed"
)

//go:embed words.txt
var embedded string

// Word length bounds for the filtered corpus. Very short words add little
// entropy per keystroke and very long ones hurt memorability.
const (
	minWordLen = 4
	maxWordLen = 7
)

// Default returns the embedded curated corpus: lowercase words within the
// length bounds.
func Default() []string {
	return parse(embedded)
}

// Load reads a newline-separated word file. Words are lowercased and
// filtered to the length bounds; blank lines and lines starting with '#'
// are skipped. If filtering would leave nothing, the unfiltered words are
// kept instead.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	words := parse(string(data))
	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist %s contains no usable words", path)
	}
	return words, nil
}

func parse(data string) []string {
	var all, filtered []string
	for _, line := range strings.Split(data, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		all = append(all, w)
		if n := len(w); n >= minWordLen && n <= maxWordLen {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}
	return all
}
