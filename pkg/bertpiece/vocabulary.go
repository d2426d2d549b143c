package bertpiece

import (
	"io"

	"github.com/crimson-sun/bertpiece/internal/normalize"
	"github.com/crimson-sun/bertpiece/internal/vocab"
)

// Vocabulary is a loaded WordPiece vocabulary. It is immutable and safe to
// share across goroutines and across any number of Tokenizer instances.
type Vocabulary = vocab.Vocabulary

// VocabOption configures vocabulary loading.
type VocabOption = vocab.Option

// WithLowercase sets whether the pre-tokenizer lowercases input before
// splitting and matching. Default: true.
func WithLowercase(v bool) VocabOption { return vocab.WithLowercase(v) }

// WithNormalizationForm sets the Unicode normalization form used for the
// re-normalize and diacritic-stripping fallback stages. Default: NFD.
func WithNormalizationForm(f normalize.Form) VocabOption { return vocab.WithNormalizationForm(f) }

// LoadVocabulary reads a vocab.txt file from disk: one token per line, the
// zero-based line number is the token id.
func LoadVocabulary(path string, opts ...VocabOption) (*Vocabulary, error) {
	v, err := vocab.Load(path, opts...)
	if err != nil {
		return nil, wrap(err)
	}
	return v, nil
}

// LoadVocabularyFromReader is LoadVocabulary reading from an already-open
// io.Reader, e.g. an embedded asset.
func LoadVocabularyFromReader(r io.Reader, opts ...VocabOption) (*Vocabulary, error) {
	v, err := vocab.LoadReader(r, opts...)
	if err != nil {
		return nil, wrap(err)
	}
	return v, nil
}
