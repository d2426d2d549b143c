// Package wordpiece implements the greedy longest-match WordPiece
// decomposition of a single word span into vocabulary ids, including the
// cascading unknown-token fallback chain.
package wordpiece

import (
	"github.com/crimson-sun/bertpiece/internal/chars"
	"github.com/crimson-sun/bertpiece/internal/normalize"
	"github.com/crimson-sun/bertpiece/internal/vocab"
)

// Result reports what Match did.
type Result struct {
	// Emitted is the number of ids written into the sink. Always 0 when
	// Overflow is true.
	Emitted int
	// Unknown is true if the word could not be decomposed by any stage of
	// the fallback chain and [UNK] was emitted instead.
	Unknown bool
	// Overflow is true if the word's decomposition (or even a single
	// [UNK]) does not fit in the supplied sink. Nothing is written in
	// this case — the caller must treat the word as not emitted at all,
	// never partially.
	Overflow bool
}

// fallback stage tags, bounding recursion depth at 3 per the spec's staged
// pipeline design: re-clean, re-normalize, strip-diacritics.
const (
	stageNone = iota
	stageRecleaned
	stageRenormalized
	stageStripped
)

// outcome classifies one unfallback-chained attempt at tryWordpiece.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeUnknown
	outcomeOverflow
)

// Match decomposes word into subword ids using the longest-prefix /
// longest-suffix greedy algorithm against v, writing up to len(sink) ids
// into sink.
func Match(v *vocab.Vocabulary, word string, sink []int32) Result {
	return matchStage(v, word, sink, stageNone)
}

func matchStage(v *vocab.Vocabulary, word string, sink []int32, stage int) Result {
	written, oc := tryWordpiece(v, word, sink)
	switch oc {
	case outcomeOK:
		return Result{Emitted: written}
	case outcomeOverflow:
		return Result{Overflow: true}
	}

	switch stage {
	case stageNone:
		if cleaned, changed := recleanWord(word); changed {
			if cleaned == "" {
				return Result{Emitted: 0}
			}
			return matchStage(v, cleaned, sink, stageRecleaned)
		}
		fallthrough
	case stageRecleaned:
		if !normalize.IsNormalized(v.Form, word) {
			return matchStage(v, normalize.Normalize(v.Form, word), sink, stageRenormalized)
		}
		fallthrough
	case stageRenormalized:
		if stripped := normalize.StripDiacritics(word, v.Form); stripped != word {
			return matchStage(v, stripped, sink, stageStripped)
		}
	}

	if len(sink) == 0 {
		return Result{Overflow: true}
	}
	sink[0] = v.Unk.ID
	return Result{Emitted: 1, Unknown: true}
}

// maxWordRunes bounds both the decomposition scratch buffer and the words
// this matcher will even attempt: a word longer than this is treated as
// unknown outright, the same cutoff the reference tokenizer applies before
// falling back to [UNK].
const maxWordRunes = 200

// tryWordpiece runs the core greedy decomposition once, with no fallback.
// It decomposes into a fixed stack buffer first and only copies into sink
// once the full decomposition is known to fit, so a sink too small for the
// word never observes a partial write.
func tryWordpiece(v *vocab.Vocabulary, word string, sink []int32) (int, outcome) {
	runes := []rune(word)
	if len(runes) == 0 {
		return 0, outcomeOK
	}
	if len(runes) > maxWordRunes {
		return 0, outcomeUnknown
	}

	id, prefixLen, ok := v.LongestPrefix(runes)
	if !ok {
		return 0, outcomeUnknown
	}

	var scratch [maxWordRunes]int32
	scratch[0] = id
	written := 1

	remaining := runes[prefixLen:]
	for len(remaining) > 0 {
		sid, suffixLen, ok := v.LongestSuffix(remaining)
		if !ok {
			return 0, outcomeUnknown
		}
		scratch[written] = sid
		written++
		remaining = remaining[suffixLen:]
	}

	if written > len(sink) {
		return 0, outcomeOverflow
	}
	copy(sink, scratch[:written])
	return written, outcomeOK
}

// recleanWord removes any remaining control/format/surrogate/private-use/
// replacement scalars from word. changed reports whether anything was
// removed.
func recleanWord(word string) (cleaned string, changed bool) {
	hasCleanable := false
	for _, r := range word {
		if chars.IsCleanable(r) {
			hasCleanable = true
			break
		}
	}
	if !hasCleanable {
		return word, false
	}

	runes := make([]rune, 0, len(word))
	for _, r := range word {
		if chars.IsCleanable(r) {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes), true
}
