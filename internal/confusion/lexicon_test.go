package confusion

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadLexicon_FiltersWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	content := "hello\nthe\nWeather\nsunshine\nis\ngreat\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	l := LoadLexicon(path, "")
	if l.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", l.Len())
	}
	for _, w := range []string{"hello", "sunshine", "great"} {
		if !l.Contains(w) {
			t.Errorf("expected %q in lexicon", w)
		}
	}
	// "the" and "is" are too short, "Weather" is not all-lowercase.
	for _, w := range []string{"the", "is", "Weather"} {
		if l.Contains(w) {
			t.Errorf("did not expect %q in lexicon", w)
		}
	}
}

func TestLoadLexicon_EmptyPathWarns(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := LoadLexicon("", "")
	if l.Len() != 0 {
		t.Errorf("expected empty lexicon, got %d words", l.Len())
	}
	if !strings.Contains(buf.String(), "WARN") {
		t.Error("expected a warning when no word list is configured")
	}
}

func TestLoadLexicon_MissingFileDegrades(t *testing.T) {
	l := LoadLexicon(filepath.Join(t.TempDir(), "absent"), "")
	if l.Len() != 0 {
		t.Errorf("expected empty lexicon, got %d words", l.Len())
	}
	if got := l.Matches([]string{"hello", "sunshine"}); got != nil {
		t.Errorf("expected no matches from empty lexicon, got %v", got)
	}
}

func TestLexicon_Matches(t *testing.T) {
	l := newLexicon("hope", "great", "weather")
	got := l.Matches(strings.Fields("안녕하세요 I hope the weather is great"))
	want := []string{"hope", "weather", "great"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLexicon_NilSafe(t *testing.T) {
	var l *Lexicon
	if l.Len() != 0 || l.Contains("word") || l.Matches([]string{"some", "words"}) != nil {
		t.Error("nil lexicon must behave as empty")
	}
}

func TestLoanwordTokens_PerLanguage(t *testing.T) {
	// Korean keeps whitespace fields; a segmented language must split a
	// Latin run out of unspaced CJK text so the lexicon can see it.
	ko := loanwordTokens("저는 computer 공학을 공부해요", "ko")
	want := []string{"저는", "computer", "공학을", "공부해요"}
	if !reflect.DeepEqual(ko, want) {
		t.Errorf("expected %v, got %v", want, ko)
	}

	zh := loanwordTokens("我非常喜欢machine学习的课程", "zh")
	if len(zh) < 2 {
		t.Fatalf("expected segmented tokens, got %v", zh)
	}
	found := false
	for _, tok := range zh {
		if tok == "machine" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q among tokens %v", "machine", zh)
	}
}
