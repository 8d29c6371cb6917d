// Package dict provides the immutable Chinese-to-English term dictionary
// used before falling back to machine translation.
package dict

import (
	"sort"
	"unicode/utf8"
)

// Entry maps one source term to its curated target term. Several source
// terms may share a target.
type Entry struct {
	Source string
	Target string
}

// Dictionary is an immutable term mapping constructed once at startup. Its
// entries are exposed pre-sorted by descending source length so the matcher
// prefers compound terms over their shorter sub-sequences.
type Dictionary struct {
	sorted []Entry
	index  map[string]string
}

// New builds a Dictionary from entries in insertion order. Length ties keep
// that order, which is what breaks matching ties between equal-length terms.
func New(entries []Entry) *Dictionary {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Source) > utf8.RuneCountInString(sorted[j].Source)
	})

	index := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := index[e.Source]; !ok {
			index[e.Source] = e.Target
		}
	}

	return &Dictionary{sorted: sorted, index: index}
}

// Default returns the built-in Dyson Sphere Program dictionary.
func Default() *Dictionary {
	return New(defaultEntries)
}

// DefaultEntries returns a copy of the built-in table in insertion order,
// for callers that merge an overlay on top of it.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)

	return entries
}

// Entries returns the entries sorted by source rune count, longest first.
// Callers must not mutate the returned slice.
func (d *Dictionary) Entries() []Entry {
	return d.sorted
}

// Lookup returns the target term for an exact source term.
func (d *Dictionary) Lookup(source string) (string, bool) {
	target, ok := d.index[source]
	return target, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.sorted)
}

// Merge returns base extended by overlay: overlay entries with a known source
// replace the base target in place, unknown sources are appended in overlay
// order.
func Merge(base, overlay []Entry) []Entry {
	merged := make([]Entry, len(base))
	copy(merged, base)

	position := make(map[string]int, len(base))
	for i, e := range merged {
		if _, ok := position[e.Source]; !ok {
			position[e.Source] = i
		}
	}

	for _, e := range overlay {
		if i, ok := position[e.Source]; ok {
			merged[i].Target = e.Target
			continue
		}

		position[e.Source] = len(merged)
		merged = append(merged, e)
	}

	return merged
}
