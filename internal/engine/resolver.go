package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dsptools/hanrename/internal/adapter"
	"github.com/dsptools/hanrename/internal/dict"
)

// Resolver turns a single path component into its target-script name:
// dictionary matches are substituted directly, the remaining Han runs go
// through the fallback translator, and the result is normalized.
type Resolver struct {
	matcher    *Matcher
	translator adapter.Translator
}

// NewResolver constructs a Resolver over the dictionary and translator.
func NewResolver(d *dict.Dictionary, translator adapter.Translator) *Resolver {
	return &Resolver{
		matcher:    NewMatcher(d),
		translator: translator,
	}
}

// ResolveName resolves a file or directory base name. Names without Han
// runes are returned unchanged. The extension is split off first and never
// translated. A failed translation fails the whole name: no partial result
// is ever returned.
func (r *Resolver) ResolveName(ctx context.Context, name string) (string, error) {
	if !HasHan(name) {
		return name, nil
	}

	stem, suffix := SplitExt(name)

	resolved, err := r.resolveStem(ctx, stem)
	if err != nil {
		return "", err
	}

	return NormalizeStem(resolved) + suffix, nil
}

// PreviewName resolves a name against the dictionary alone: matched terms
// are substituted, unmatched Han runs are left in place. No translator is
// consulted, so this is safe for offline listings.
func (r *Resolver) PreviewName(name string) string {
	if !HasHan(name) {
		return name
	}

	stem, suffix := SplitExt(name)
	spans := r.matcher.Spans(stem)

	if len(spans) == 0 {
		return name
	}

	parts := make([]part, 0, 2*len(spans)+1)
	last := 0

	for _, span := range spans {
		if gap := stem[last:span.Start]; gap != "" {
			parts = append(parts, literalPart(gap))
		}

		parts = append(parts, part{text: span.Replacement, genLead: true, genTail: true})
		last = span.End
	}

	if tail := stem[last:]; tail != "" {
		parts = append(parts, literalPart(tail))
	}

	return NormalizeStem(joinParts(parts)) + suffix
}

// literalPart wraps untouched text; Han edges still attract a separating
// hyphen so the preview matches what a full resolution would produce there.
func literalPart(text string) part {
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)

	return part{
		text:    text,
		genLead: unicode.Is(unicode.Han, first),
		genTail: unicode.Is(unicode.Han, last),
	}
}

// part is one assembled segment of a resolved stem. genLead/genTail mark
// whether its first/last characters were produced by the dictionary or the
// translator rather than copied from the original name; a hyphen separates
// two generated segments that would otherwise run together.
type part struct {
	text    string
	genLead bool
	genTail bool
}

func (r *Resolver) resolveStem(ctx context.Context, stem string) (string, error) {
	spans := r.matcher.Spans(stem)
	if len(spans) == 0 {
		return r.translateRuns(ctx, stem)
	}

	parts := make([]part, 0, 2*len(spans)+1)
	last := 0

	for _, span := range spans {
		gap, err := r.gapPart(ctx, stem[last:span.Start])
		if err != nil {
			return "", err
		}

		if gap.text != "" {
			parts = append(parts, gap)
		}

		parts = append(parts, part{text: span.Replacement, genLead: true, genTail: true})
		last = span.End
	}

	tail, err := r.gapPart(ctx, stem[last:])
	if err != nil {
		return "", err
	}

	if tail.text != "" {
		parts = append(parts, tail)
	}

	return joinParts(parts), nil
}

// joinParts concatenates the assembled segments, hyphenating the seam
// between two generated neighbors so substituted terms never run together.
func joinParts(parts []part) string {
	var b strings.Builder

	for i, p := range parts {
		if i > 0 && parts[i-1].genTail && p.genLead {
			b.WriteString("-")
		}

		b.WriteString(p.text)
	}

	return b.String()
}

// gapPart translates the Han runs inside a between-spans gap, remembering
// whether the gap's edges were translated text.
func (r *Resolver) gapPart(ctx context.Context, gap string) (part, error) {
	if gap == "" || !HasHan(gap) {
		return part{text: gap}, nil
	}

	first, _ := utf8.DecodeRuneInString(gap)
	lastRune, _ := utf8.DecodeLastRuneInString(gap)

	translated, err := r.translateRuns(ctx, gap)
	if err != nil {
		return part{}, err
	}

	return part{
		text:    translated,
		genLead: unicode.Is(unicode.Han, first),
		genTail: unicode.Is(unicode.Han, lastRune),
	}, nil
}

// translateRuns sends each maximal contiguous Han run in text through the
// fallback translator, substituting right-to-left so the byte offsets of
// runs not yet processed stay valid.
func (r *Resolver) translateRuns(ctx context.Context, text string) (string, error) {
	runs := hanRun.FindAllStringIndex(text, -1)
	if len(runs) == 0 {
		return text, nil
	}

	result := text

	for i := len(runs) - 1; i >= 0; i-- {
		start, end := runs[i][0], runs[i][1]
		run := result[start:end]

		translated, err := r.translator.Translate(ctx, run)
		if err != nil {
			return "", fmt.Errorf("failed to translate %q: %w", run, err)
		}

		translated = sanitizeTranslated(translated)
		slog.Debug("resolved run", "run", run, "translated", translated)

		result = result[:start] + translated + result[end:]
	}

	return result, nil
}
