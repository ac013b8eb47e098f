package tokens

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Structural bonuses applied by the character strategy. Newlines, tabs,
// and punctuation tend to tokenize on their own.
const (
	newlineBonus     = 0.2
	tabBonus         = 0.15
	punctuationBonus = 0.05
)

// punctuation is the set of characters that earn the punctuation bonus.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ErrUnknownStrategy indicates a counting strategy name that is not
// recognized.
var ErrUnknownStrategy = errors.New("unknown counting strategy")

// Strategy identifies a token estimation strategy.
type Strategy string

const (
	// StrategyCharacter estimates from character count with structural
	// bonuses. This is the default.
	StrategyCharacter Strategy = "character"

	// StrategyWhitespace estimates from word count, adjusted for long words.
	StrategyWhitespace Strategy = "whitespace"

	// StrategyWord estimates from raw word count.
	StrategyWord Strategy = "word"

	// StrategyHeuristic estimates from character count with a ratio that
	// adapts to code-like or digit-heavy content.
	StrategyHeuristic Strategy = "heuristic"
)

// ParseStrategy validates a strategy name. Unknown names are rejected
// rather than silently defaulted.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case StrategyCharacter, StrategyWhitespace, StrategyWord, StrategyHeuristic:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	// It returns 0 for empty text and at least 1 for non-empty text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// NewCounter returns the Counter implementation for the given strategy.
func NewCounter(strategy Strategy) (Counter, error) {
	switch strategy {
	case StrategyCharacter:
		return CharCounter{}, nil
	case StrategyWhitespace:
		return WhitespaceCounter{}, nil
	case StrategyWord:
		return WordCounter{}, nil
	case StrategyHeuristic:
		return HeuristicCounter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// EstimateTokens is a convenience function using the default strategy.
func EstimateTokens(text string) int {
	return CharCounter{}.Count(text)
}

// CharCounter estimates tokens as collapsed-whitespace characters divided
// by four, plus structural bonuses for newlines, tabs, and punctuation.
type CharCounter struct{}

// Count estimates the number of tokens in the given text.
func (c CharCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	collapsed := strings.Join(strings.Fields(text), " ")
	estimate := float64(utf8.RuneCountInString(collapsed)) / DefaultCharsPerToken

	// Structural characters are counted from the original text; collapsing
	// removes the newlines and tabs they reward.
	var newlines, tabs, punct int
	for _, r := range text {
		switch {
		case r == '\n':
			newlines++
		case r == '\t':
			tabs++
		case strings.ContainsRune(punctuation, r):
			punct++
		}
	}
	estimate += newlineBonus*float64(newlines) +
		tabBonus*float64(tabs) +
		punctuationBonus*float64(punct)

	return atLeast(1, int(estimate))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c CharCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// WhitespaceCounter estimates tokens as the word count, increased by 15%
// when the average word exceeds eight characters (long words usually
// split into multiple tokens).
type WhitespaceCounter struct{}

// Count estimates the number of tokens in the given text.
func (c WhitespaceCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}

	var chars int
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}

	count := len(words)
	if float64(chars)/float64(len(words)) > 8 {
		count = int(float64(count) * 1.15)
	}
	return atLeast(1, count)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c WhitespaceCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// WordCounter estimates tokens as the raw word count.
type WordCounter struct{}

// Count estimates the number of tokens in the given text.
func (c WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return atLeast(1, len(strings.Fields(text)))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c WordCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// codeMarkers are substrings that indicate code-like content, which
// tokenizes more densely than prose.
var codeMarkers = []string{"import ", "def ", "class ", "async ", "://"}

// HeuristicCounter estimates tokens as characters divided by a
// content-sensitive ratio: 3.0 for code-like text, 2.5 for digit-heavy
// text, 4.5 otherwise.
type HeuristicCounter struct{}

// Count estimates the number of tokens in the given text.
func (c HeuristicCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	ratio := 4.5
	switch {
	case containsAny(text, codeMarkers):
		ratio = 3.0
	case digitFraction(text) > 0.3:
		ratio = 2.5
	}

	return atLeast(1, int(float64(utf8.RuneCountInString(text))/ratio))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c HeuristicCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func digitFraction(text string) float64 {
	var digits, total int
	for _, r := range text {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}

func atLeast(floor, n int) int {
	if n < floor {
		return floor
	}
	return n
}
