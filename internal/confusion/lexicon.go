package confusion

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"unicode"
)

// minLexiconWordLen excludes short words ("a", "the", "and") that appear in
// romanized text of every language and would flag nearly any line.
const minLexiconWordLen = 3

// Lexicon is the English word list used for loanword detection in
// CJK-class lines. A nil or empty lexicon never matches; a missing source
// file is degraded mode, not an error.
type Lexicon struct {
	words map[string]struct{}
}

// LoadLexicon reads one word per line from path, keeping only all-lowercase
// words longer than three characters. When the file is absent and url is
// non-empty, the list is fetched once and cached at path first. Any failure
// logs a warning and returns an empty lexicon.
func LoadLexicon(path, url string) *Lexicon {
	if path == "" {
		log.Printf("WARN: no English word list configured, loanword checks disabled")
		return &Lexicon{}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && url != "" {
		log.Printf("Downloading English word list... (%s)", url)
		if err := download(url, path); err != nil {
			log.Printf("WARN: word list download failed, English word checks disabled: %v", err)
			return &Lexicon{}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("WARN: cannot open %s, English word checks disabled: %v", path, err)
		return &Lexicon{}
	}
	defer f.Close()

	words := make(map[string]struct{})
	s := bufio.NewScanner(f)
	for s.Scan() {
		w := strings.TrimSpace(s.Text())
		if len(w) > minLexiconWordLen && isLowerWord(w) {
			words[w] = struct{}{}
		}
	}
	if err := s.Err(); err != nil {
		log.Printf("WARN: error reading %s: %v", path, err)
	}
	return &Lexicon{words: words}
}

// newLexicon builds a lexicon directly from words, applying the same
// filtering as LoadLexicon.
func newLexicon(words ...string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if len(w) > minLexiconWordLen && isLowerWord(w) {
			l.words[w] = struct{}{}
		}
	}
	return l
}

// Len reports the number of loaded words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Contains reports whether word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[word]
	return ok
}

// Matches returns every token whose trimmed form is in the lexicon, in
// order of appearance.
func (l *Lexicon) Matches(tokens []string) []string {
	if l.Len() == 0 {
		return nil
	}
	var found []string
	for _, tok := range tokens {
		if l.Contains(strings.TrimSpace(tok)) {
			found = append(found, tok)
		}
	}
	return found
}

func isLowerWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return w != ""
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
