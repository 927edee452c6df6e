package confusion

import (
	"log"
	"strings"
	"sync"

	"github.com/go-ego/gse"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Segmenter handles are process-wide: loaded at most once, read-only after.
var (
	zhOnce sync.Once
	zhSeg  *gse.Segmenter

	jaOnce sync.Once
	jaTok  *tokenizer.Tokenizer
)

func chineseSegmenter() *gse.Segmenter {
	zhOnce.Do(func() {
		var seg gse.Segmenter
		if err := seg.LoadDict(); err != nil {
			log.Printf("WARN: Chinese segmenter unavailable, falling back to character tokens: %v", err)
			return
		}
		zhSeg = &seg
	})
	return zhSeg
}

func japaneseTokenizer() *tokenizer.Tokenizer {
	jaOnce.Do(func() {
		t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err != nil {
			log.Printf("WARN: Japanese tokenizer unavailable, falling back to character tokens: %v", err)
			return
		}
		jaTok = t
	})
	return jaTok
}

// Tokenize splits line into tokens for the given target language. Chinese
// and Japanese use their segmenters when available and degrade to
// character-level tokens when not; Korean is always character-level; every
// other language splits on whitespace. Pure in (line, lang): callers may
// cache results.
func Tokenize(line, lang string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	switch lang {
	case "zh":
		if seg := chineseSegmenter(); seg != nil {
			return dropBlankTokens(seg.Cut(line, true))
		}
		return characterTokens(line)
	case "ja":
		if t := japaneseTokenizer(); t != nil {
			return dropBlankTokens(t.Wakati(line))
		}
		return characterTokens(line)
	case "ko":
		return characterTokens(line)
	default:
		return strings.Fields(line)
	}
}

// characterTokens treats every rune of the trimmed line as one token.
func characterTokens(line string) []string {
	tokens := make([]string, 0, len(line))
	for _, r := range line {
		tokens = append(tokens, string(r))
	}
	return tokens
}

func dropBlankTokens(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
