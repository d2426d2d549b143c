// Package bertpiece is the public Encoder facade: it drives the
// pre-tokenizer and the WordPiece matcher together against a loaded
// Vocabulary to turn text into input_ids / attention_mask / token_type_ids,
// matching the reference BERT tokenizer's output exactly.
package bertpiece

import (
	"github.com/crimson-sun/bertpiece/internal/metrics"
	"github.com/crimson-sun/bertpiece/internal/pretoken"
	"github.com/crimson-sun/bertpiece/internal/wordpiece"
)

// Tokenizer encodes text into WordPiece id sequences against a fixed
// Vocabulary. The zero value is not usable; construct with NewTokenizer.
type Tokenizer struct {
	vocab   *Vocabulary
	metrics *metrics.Collector
}

// NewTokenizer builds a Tokenizer over v. v must not be nil.
func NewTokenizer(v *Vocabulary, opts ...Option) *Tokenizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tokenizer{vocab: v, metrics: o.metrics}
}

// encodeWalker drives pretoken.Walk, matching each word span against the
// vocabulary and writing ids into the shared sink while capacity remains.
// One slot is always reserved for [SEP].
type encodeWalker struct {
	t        *Tokenizer
	ids      []int32
	pos      int
	limit    int
	overflow bool
}

func (w *encodeWalker) OnWord(word string) bool {
	capacity := w.limit - w.pos
	if capacity <= 0 {
		w.overflow = true
		return false
	}
	r := wordpiece.Match(w.t.vocab, word, w.ids[w.pos:w.pos+capacity])
	if r.Overflow {
		w.overflow = true
		return false
	}
	if r.Unknown {
		w.t.metrics.IncUnknown()
	}
	w.pos += r.Emitted
	return true
}

// encodeCore writes [CLS], the WordPiece decomposition of input truncated
// to fit, and [SEP] into ids. It never pads. It returns N, the number of
// ids written — always >= 2 for len(ids) >= 2, since [CLS] and [SEP] are
// unconditional.
func (t *Tokenizer) encodeCore(input string, ids []int32) (int, error) {
	if t == nil || t.vocab == nil {
		return 0, ErrVocabularyNotLoaded
	}
	if len(ids) < 2 {
		return 0, ErrSinkTooSmall
	}
	t.metrics.IncEncode()

	ids[0] = t.vocab.Cls.ID
	w := &encodeWalker{t: t, ids: ids, pos: 1, limit: len(ids) - 1}
	pretoken.Walk(input, pretoken.Config{Lowercase: t.vocab.Lowercase}, w)

	ids[w.pos] = t.vocab.Sep.ID
	return w.pos + 1, nil
}

// Encode tokenizes input into inputIDs, which also bounds the maximum
// sequence length M = len(inputIDs). attentionMask and tokenTypeIDs may be
// nil if the caller doesn't need them filled. If padTo is greater than
// zero, the sequence is padded up to padTo with [PAD] / mask 0 / type 0 —
// clamped to M, since a caller-supplied sink cannot grow. Encode returns
// the number of positions written.
func (t *Tokenizer) Encode(input string, inputIDs, attentionMask, tokenTypeIDs []int32, padTo int) (int, error) {
	n, err := t.encodeCore(input, inputIDs)
	if err != nil {
		return 0, err
	}

	l := n
	if padTo > l {
		l = padTo
	}
	if l > len(inputIDs) {
		l = len(inputIDs)
	}
	for i := n; i < l; i++ {
		inputIDs[i] = t.vocab.Pad.ID
	}

	if attentionMask != nil {
		end := min(l, len(attentionMask))
		for i := 0; i < end; i++ {
			if i < n {
				attentionMask[i] = 1
			} else {
				attentionMask[i] = 0
			}
		}
	}
	if tokenTypeIDs != nil {
		end := min(l, len(tokenTypeIDs))
		for i := 0; i < end; i++ {
			tokenTypeIDs[i] = 0
		}
	}

	return l, nil
}

// EncodeString is the allocating convenience form of Encode. maxTokens
// bounds the unpadded length N (the truncation point). padTo, if greater
// than N, grows the returned slices beyond maxTokens — unlike the
// sink-based Encode, padTo here is never clamped to maxTokens, since the
// caller isn't supplying a fixed-size buffer.
func (t *Tokenizer) EncodeString(input string, maxTokens, padTo int) (inputIDs, attentionMask, tokenTypeIDs []int32, n int, err error) {
	if t == nil || t.vocab == nil {
		return nil, nil, nil, 0, ErrVocabularyNotLoaded
	}
	if maxTokens < 2 {
		return nil, nil, nil, 0, ErrSinkTooSmall
	}

	scratch := make([]int32, maxTokens)
	n, err = t.encodeCore(input, scratch)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	l := n
	if padTo > l {
		l = padTo
	}

	inputIDs = make([]int32, l)
	copy(inputIDs, scratch[:n])
	for i := n; i < l; i++ {
		inputIDs[i] = t.vocab.Pad.ID
	}

	attentionMask = make([]int32, l)
	for i := 0; i < n; i++ {
		attentionMask[i] = 1
	}

	tokenTypeIDs = make([]int32, l)

	return inputIDs, attentionMask, tokenTypeIDs, n, nil
}
