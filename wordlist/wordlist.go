// Package wordlist loads the candidate vocabulary, either from a plain
// newline-delimited text file or from a sqlite word store.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Load reads a newline-delimited word list from disk. Words are upper-cased
// and deduplicated; blank lines are skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := Read(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}

func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, strings.ToUpper(w))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(words), nil
}
