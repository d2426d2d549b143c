// Package pretoken implements the BERT pre-tokenizer: it streams an input
// string once, cleans it, optionally lowercases it, splits it on
// whitespace/punctuation/CJK boundaries, and delivers each resulting word
// span to a caller-supplied visitor. The visitor may stop the walk early.
package pretoken

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crimson-sun/bertpiece/internal/chars"
)

// Visitor receives word spans in input order. OnWord returns false to stop
// the walk early; Walk never delivers another span after that.
type Visitor interface {
	OnWord(word string) (cont bool)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(string) bool

// OnWord implements Visitor.
func (f VisitorFunc) OnWord(word string) bool { return f(word) }

// Config controls the pre-tokenizer's case-folding step.
type Config struct {
	// Lowercase enables invariant-culture lowercasing of each
	// whitespace-delimited chunk before punctuation/CJK splitting.
	Lowercase bool
}

var lowerCaser = cases.Lower(language.Und)

// Walk cleans input, splits it into word spans per the BERT pre-tokenizer
// convention, and delivers each non-empty span to v in input order. Walk
// returns as soon as v.OnWord reports false.
func Walk(input string, cfg Config, v Visitor) {
	cleaned := clean(input)

	i := 0
	n := len(cleaned)
	for i < n {
		// Skip a run of whitespace.
		for i < n {
			r, size := decodeAt(cleaned, i)
			if !chars.IsWhitespace(r) {
				break
			}
			i += size
		}
		if i >= n {
			return
		}

		// Collect one whitespace-delimited chunk.
		start := i
		for i < n {
			r, size := decodeAt(cleaned, i)
			if chars.IsWhitespace(r) {
				break
			}
			i += size
		}
		chunk := cleaned[start:i]

		if cfg.Lowercase {
			chunk = lowerCaser.String(chunk)
		}

		if !splitChunk(chunk, v) {
			return
		}
	}
}

// clean removes control/format/surrogate/private-use/replacement scalars,
// leaving everything else (including tab/newline/carriage-return, handled
// as whitespace by the splitter) untouched. Returns the input unchanged,
// without allocating, when nothing needs to be removed.
func clean(s string) string {
	needsWork := false
	for _, r := range s {
		if chars.IsCleanable(r) {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if chars.IsCleanable(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitChunk splits one whitespace-delimited chunk on punctuation and CJK
// boundaries, delivering each resulting span to v. Returns false as soon as
// v asks to stop.
func splitChunk(chunk string, v Visitor) bool {
	start := 0
	for i, r := range chunk {
		if !chars.IsPunctuation(r) && !chars.IsCJK(r) {
			continue
		}
		if i > start {
			if !v.OnWord(chunk[start:i]) {
				return false
			}
		}
		size := len(string(r))
		if !v.OnWord(chunk[i : i+size]) {
			return false
		}
		start = i + size
	}
	if start < len(chunk) {
		return v.OnWord(chunk[start:])
	}
	return true
}

// decodeAt returns the rune starting at byte offset i in s and its size in
// bytes.
func decodeAt(s string, i int) (rune, int) {
	for _, r := range s[i:] {
		return r, len(string(r))
	}
	return 0, 0
}
