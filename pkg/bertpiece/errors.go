package bertpiece

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/bertpiece/internal/vocab"
)

// ErrVocabularyNotLoaded is returned by Encode and its variants when called
// on a Tokenizer that was never given a vocabulary (its zero value).
var ErrVocabularyNotLoaded = errors.New("bertpiece: vocabulary not loaded")

// ErrVocabularyMalformed is returned by LoadVocabulary when the vocab file
// is missing one of the four required special tokens, or is empty.
var ErrVocabularyMalformed = vocab.ErrMalformed

// ErrSinkTooSmall is returned by Encode when the id sink has fewer than 2
// slots — not enough room for [CLS] and [SEP] alone.
var ErrSinkTooSmall = errors.New("bertpiece: sink has fewer than 2 slots")

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("bertpiece: %w", err)
}
