package confusion

import (
	"reflect"
	"testing"
)

func TestTokenize_WhitespaceLanguages(t *testing.T) {
	got := Tokenize("  Hello how are you  ", "en")
	want := []string{"Hello", "how", "are", "you"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_KoreanIsCharacterLevel(t *testing.T) {
	got := Tokenize("안녕 잘", "ko")
	want := []string{"안", "녕", " ", "잘"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_EmptyLine(t *testing.T) {
	for _, lang := range []string{"en", "ko", "zh", "ja"} {
		if got := Tokenize("   ", lang); len(got) != 0 {
			t.Errorf("Tokenize(blank, %s) = %v, want empty", lang, got)
		}
	}
}

func TestCharacterTokens_MultibyteSafe(t *testing.T) {
	got := characterTokens("日本語")
	want := []string{"日", "本", "語"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDropBlankTokens(t *testing.T) {
	got := dropBlankTokens([]string{"天气", " ", "很", "", "好"})
	want := []string{"天气", "很", "好"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
