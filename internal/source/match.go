package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

// Matcher names
const (
	MatchFuzzy     = "fuzzy"
	MatchSubstring = "substring"
)

// ErrUnknownMatcher is returned by NewMatcher for names it does not know
var ErrUnknownMatcher = errors.New("unknown matcher")

// Matcher decides whether a candidate matches a filter.
// Higher scores rank first; matchers that do not rank return 0.
type Matcher interface {
	Match(filter, candidate string) (score int, ok bool)
}

// NewMatcher creates the matcher registered under name
func NewMatcher(name string, caseSensitive bool) (Matcher, error) {
	switch name {
	case MatchFuzzy:
		return NewFuzzyMatcher(caseSensitive), nil
	case MatchSubstring:
		return SubstringMatcher{CaseSensitive: caseSensitive}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
}

// SubstringMatcher keeps candidates that contain the filter text
type SubstringMatcher struct {
	CaseSensitive bool
}

// Match implements Matcher
func (m SubstringMatcher) Match(filter, candidate string) (int, bool) {
	if !m.CaseSensitive {
		filter = strings.ToLower(filter)
		candidate = strings.ToLower(candidate)
	}
	return 0, strings.Contains(candidate, filter)
}

// FuzzyMatcher scores candidates with fzf's V2 algorithm.
// It reuses one scratch slab and must not be shared between goroutines.
type FuzzyMatcher struct {
	caseSensitive bool
	slab          *util.Slab

	pattern  string
	patRunes []rune
}

// NewFuzzyMatcher creates a fuzzy matcher
func NewFuzzyMatcher(caseSensitive bool) *FuzzyMatcher {
	return &FuzzyMatcher{
		caseSensitive: caseSensitive,
		slab:          util.MakeSlab(100*1024, 2048),
	}
}

// Match implements Matcher
func (m *FuzzyMatcher) Match(filter, candidate string) (int, bool) {
	if filter == "" {
		return 0, true
	}
	if filter != m.pattern {
		m.pattern = filter
		if m.caseSensitive {
			m.patRunes = []rune(filter)
		} else {
			m.patRunes = []rune(strings.ToLower(filter))
		}
	}

	chars := util.ToChars([]byte(candidate))
	result, _ := algo.FuzzyMatchV2(m.caseSensitive, false, true, &chars, m.patRunes, false, m.slab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}
