package engine

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	hanRun      = regexp.MustCompile(`\p{Han}+`)
	multiHyphen = regexp.MustCompile(`-+`)
	unsafeChars = regexp.MustCompile(`[^\w\-.]`)
)

// HasHan reports whether s contains at least one Han rune.
func HasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}

	return false
}

// NormalizeStem collapses consecutive hyphens into one and strips leading
// and trailing hyphens. It is idempotent.
func NormalizeStem(stem string) string {
	return strings.Trim(multiHyphen.ReplaceAllString(stem, "-"), "-")
}

// SplitExt splits a name into stem and suffix, where suffix is the final
// dot-extension if present. Dotfile names like ".env" have no suffix. Only
// the stem is ever matched or translated; the suffix is reattached verbatim.
func SplitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return name, ""
	}

	return strings.TrimSuffix(name, ext), ext
}

// sanitizeTranslated makes a raw translation safe for use inside a path
// component: surrounding space removed, inner whitespace collapsed to single
// hyphens, anything outside word characters, hyphen and period dropped.
func sanitizeTranslated(s string) string {
	s = strings.Join(strings.Fields(s), "-")
	return unsafeChars.ReplaceAllString(s, "")
}
