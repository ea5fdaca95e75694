package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks censored words in message content.
// Matching ignores case, punctuation, spacing and common leet speak.
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

// folded is content reduced to matchable runes.
// positions[i] is the index in the original runes of folded rune i.
type folded struct {
	runes     []rune
	positions []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// Words that normalize to nothing (pure punctuation) are skipped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		normalized := fold(word).runes
		if len(normalized) == 0 {
			log.Debug("Skipping censored word without letters", "word", word)
			continue
		}
		patterns = append(patterns, normalized)
	}

	moderator := &Moderator{censoredChar: censoredChar, log: log}
	if len(patterns) == 0 {
		return moderator, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	moderator.matcher = m
	log.Debug("Moderator ready", "patterns", len(patterns))
	return moderator, nil
}

// Censor replaces the original characters of every match while preserving spacing.
// It returns the censored content and the matched dictionary words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	text := fold(original)
	if len(text.runes) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(text.runes, false)
	if len(spans) == 0 {
		return original, nil
	}

	out := []rune(original)
	var words []string
	for _, span := range spans {
		last := span.Pos + len(span.Word) - 1
		if span.Pos < 0 || last >= len(text.positions) {
			continue
		}
		for i := text.positions[span.Pos]; i <= text.positions[last]; i++ {
			out[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}
	return string(out), words
}

// fold lowers, de-leets and strips noise, keeping track of where each rune came from.
func fold(input string) folded {
	var f folded
	for i, r := range []rune(input) {
		r = simplifyRune(r)
		if isNoise(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.positions = append(f.positions, i)
	}
	return f
}

// simplifyRune undoes common leet speak substitutions.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
