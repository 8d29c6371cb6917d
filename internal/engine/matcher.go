// Package engine implements the term-resolution and rename-planning core:
// dictionary matching, fallback translation of the unmatched runs, name
// normalization, bottom-up tree scanning and conflict-free rename execution.
package engine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dsptools/hanrename/internal/dict"
	m "github.com/dsptools/hanrename/internal/model"
)

// Matcher finds the maximal non-overlapping set of dictionary matches inside
// a string. Because the dictionary is iterated longest term first, a longer
// term always beats any shorter term that overlaps its occurrence.
type Matcher struct {
	dict *dict.Dictionary
}

// NewMatcher constructs a Matcher over the given dictionary.
func NewMatcher(d *dict.Dictionary) *Matcher {
	return &Matcher{dict: d}
}

// Spans returns the accepted match spans sorted by start offset. Offsets are
// byte offsets into s; spans are pairwise non-overlapping.
func (mt *Matcher) Spans(s string) []m.MatchSpan {
	var accepted []m.MatchSpan

	for _, entry := range mt.dict.Entries() {
		start := 0

		for {
			idx := strings.Index(s[start:], entry.Source)
			if idx < 0 {
				break
			}

			idx += start
			end := idx + len(entry.Source)

			if !overlapsAny(accepted, idx, end) {
				accepted = append(accepted, m.MatchSpan{
					Start:       idx,
					End:         end,
					Replacement: entry.Target,
				})
			}

			// Advance by one rune, not past the whole occurrence, so a
			// shorter term can still be found at the next starting offset
			// when this occurrence was rejected for overlap.
			_, width := utf8.DecodeRuneInString(s[idx:])
			start = idx + width
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})

	return accepted
}

func overlapsAny(spans []m.MatchSpan, start, end int) bool {
	for _, span := range spans {
		if span.Overlaps(start, end) {
			return true
		}
	}

	return false
}
