// Package moderation censors chat content before it is persisted:
// banned words via an Aho-Corasick automaton robust to leet speak,
// and contact details (phone numbers, e-mail addresses) masked to keep
// the negotiation on-platform.
package moderation

import (
	"regexp"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

var (
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

type Moderator struct {
	matcher  *goahocorasick.Machine
	maskRune rune
}

// NewModerator builds the automaton over normalized banned words.
// An empty word list yields a moderator that only masks contact info.
func NewModerator(bannedWords []string, maskRune rune) (Moderator, error) {
	m := Moderator{maskRune: maskRune}
	if len(bannedWords) == 0 {
		return m, nil
	}

	patterns := make([][]rune, 0, len(bannedWords))
	for _, word := range bannedWords {
		if normalized := normalize([]rune(word)); len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return Moderator{}, err
	}
	m.matcher = machine
	return m, nil
}

// Censor returns content with banned words and contact details
// replaced by the mask rune. Spacing and untouched characters keep
// their original positions.
func (m *Moderator) Censor(content string) string {
	masked := m.censorWords(content)
	masked = m.maskPattern(masked, phonePattern)
	masked = m.maskPattern(masked, emailPattern)
	return masked
}

func (m *Moderator) censorWords(content string) string {
	if m.matcher == nil {
		return content
	}

	origRunes := []rune(content)
	normalized := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	if len(normalized) == 0 {
		return content
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.maskRune
		}
	}
	return string(origRunes)
}

func (m *Moderator) maskPattern(content string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(content, func(match string) string {
		masked := []rune(match)
		for i, r := range masked {
			if !unicode.IsSpace(r) {
				masked[i] = m.maskRune
			}
		}
		return string(masked)
	})
}

// normalize lowercases, strips noise and undoes common leet
// substitutions so "v1agra" matches "viagra".
func normalize(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

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
