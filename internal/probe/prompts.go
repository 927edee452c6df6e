package probe

import (
	"fmt"
	"strings"

	"github.com/langdrift/backend/internal/confusion"
)

// SystemPrompt instructs the model to stay in the target language. The
// probe measures how well it complies.
func SystemPrompt(languageCode string) string {
	name := confusion.Languages[languageCode]
	return fmt.Sprintf(
		"You are a helpful assistant. Answer entirely in %s. "+
			"Do not switch languages, do not translate your answer, and do not add commentary in any other language.",
		name,
	)
}

// BuildUserPrompt wraps the probe prompt with the language instruction so
// compliance failures are unambiguously the model's, not the prompt's.
func BuildUserPrompt(prompt, languageCode string) string {
	name := confusion.Languages[languageCode]
	return fmt.Sprintf("Respond in %s.\n\n%s", name, prompt)
}

// codeInPrompt reports whether the prompt targets the given language.
// Used by the mock client to pick a canned response.
func codeInPrompt(prompt, code string) bool {
	name := confusion.Languages[code]
	return name != "" && strings.Contains(prompt, name)
}
