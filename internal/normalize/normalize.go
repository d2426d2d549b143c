// Package normalize implements Unicode normalization and diacritic
// stripping for the tokenizer's pre-tokenizer and WordPiece fallback
// chain.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Form selects a Unicode normalization form.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// String implements fmt.Stringer for diagnostic output.
func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "unknown"
	}
}

func (f Form) xtext() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// Normalize rewrites s into the given normalization form.
func Normalize(form Form, s string) string {
	return form.xtext().String(s)
}

// IsNormalized reports whether s is already in the given normalization
// form, avoiding a needless rewrite in the matcher's fallback chain.
func IsNormalized(form Form, s string) bool {
	return form.xtext().IsNormalString(s)
}

// StripDiacritics decomposes s to NFD, drops every non-spacing mark
// (category Mn), lowercases any upper- or title-case letter that remains
// (a letter whose lowercase form only differs after decomposition, which a
// prior plain lowercase pass may have missed), and recomposes into
// targetForm. If s contains no marks and no such letters, s is returned
// unchanged without allocating.
func StripDiacritics(s string, targetForm Form) string {
	decomposed := norm.NFD.String(s)

	needsWork := false
	for _, r := range decomposed {
		if unicode.In(r, unicode.Mn) || unicode.IsUpper(r) || unicode.IsTitle(r) {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return targetForm.xtext().String(b.String())
}
