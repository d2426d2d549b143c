// Package vocab loads and holds a WordPiece vocabulary: the prefix/suffix
// lookup maps, the four reserved special tokens, and the tokenizer flags
// captured at load time (lowercasing, normalization form). A *Vocabulary is
// immutable once constructed and may be shared by any number of concurrent
// tokenize calls.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crimson-sun/bertpiece/internal/normalize"
	"github.com/crimson-sun/bertpiece/internal/trie"
)

const suffixMarker = "##"

// Special token names the vocabulary file must contain.
const (
	tokUNK = "[UNK]"
	tokCLS = "[CLS]"
	tokSEP = "[SEP]"
	tokPAD = "[PAD]"
)

// Special identifies one reserved token by id and literal text.
type Special struct {
	ID      int32
	Literal string
}

// Vocabulary is an immutable WordPiece vocabulary plus the tokenizer
// configuration captured at load time.
type Vocabulary struct {
	Prefix map[string]int32
	Suffix map[string]int32

	prefixTrie *trie.Trie
	suffixTrie *trie.Trie

	Unk, Cls, Sep, Pad Special

	Lowercase bool
	Form      normalize.Form
}

// Option configures vocabulary loading.
type Option func(*settings)

type settings struct {
	lowercase bool
	form      normalize.Form
}

// WithLowercase sets whether the pre-tokenizer lowercases input. Default:
// true, matching the uncased BERT reference vocabularies this format is
// drawn from.
func WithLowercase(v bool) Option {
	return func(s *settings) { s.lowercase = v }
}

// WithNormalizationForm sets the normalization form used for re-normalize
// fallback and diacritic stripping. Default: normalize.NFD, since diacritic
// stripping requires a decomposed form to operate on.
func WithNormalizationForm(f normalize.Form) Option {
	return func(s *settings) { s.form = f }
}

func defaultSettings() settings {
	return settings{lowercase: true, form: normalize.NFD}
}

// Load reads a vocab.txt file: one token per line, the zero-based line
// number is the token id. Lines beginning with "##" are continuation
// (suffix) tokens; all others are prefix tokens.
func Load(path string, opts ...Option) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	v, err := LoadReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}
	return v, nil
}

// LoadReader is Load reading from an already-open io.Reader (e.g. an
// embedded asset or an in-memory buffer in tests).
func LoadReader(r io.Reader, opts ...Option) (*Vocabulary, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	v := &Vocabulary{
		Prefix:     make(map[string]int32, 32000),
		Suffix:     make(map[string]int32, 2000),
		prefixTrie: trie.New(),
		suffixTrie: trie.New(),
		Lowercase:  s.lowercase,
		Form:       s.form,
	}

	var (
		specials   = map[string]int32{}
		lineNo     int32
		sawAnyLine bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sawAnyLine = true
		tok := scanner.Text()
		id := lineNo
		lineNo++

		switch tok {
		case tokUNK, tokCLS, tokSEP, tokPAD:
			specials[tok] = id
		}

		if strings.HasPrefix(tok, suffixMarker) {
			key := tok[len(suffixMarker):]
			v.Suffix[key] = id
			v.suffixTrie.Insert(key, id)
		} else {
			v.Prefix[tok] = id
			v.prefixTrie.Insert(tok, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}
	if !sawAnyLine {
		return nil, fmt.Errorf("%w: file is empty", ErrMalformed)
	}

	for _, req := range []struct {
		name string
		dest *Special
	}{
		{tokUNK, &v.Unk},
		{tokCLS, &v.Cls},
		{tokSEP, &v.Sep},
		{tokPAD, &v.Pad},
	} {
		id, ok := specials[req.name]
		if !ok {
			return nil, fmt.Errorf("%w: missing special token %s", ErrMalformed, req.name)
		}
		*req.dest = Special{ID: id, Literal: req.name}
	}

	return v, nil
}

// Size returns the number of entries across both lookup maps.
func (v *Vocabulary) Size() int {
	return len(v.Prefix) + len(v.Suffix)
}

// LongestPrefix returns the longest prefix of s present in the prefix map,
// along with its id and rune length.
func (v *Vocabulary) LongestPrefix(s []rune) (id int32, length int, ok bool) {
	return trie.LongestPrefix(v.prefixTrie, s)
}

// LongestSuffix returns the longest prefix of s present in the suffix
// (continuation) map, along with its id and rune length.
func (v *Vocabulary) LongestSuffix(s []rune) (id int32, length int, ok bool) {
	return trie.LongestPrefix(v.suffixTrie, s)
}

// ContainsPrefix reports whether whole is present in the prefix map.
func (v *Vocabulary) ContainsPrefix(whole string) bool {
	_, ok := v.Prefix[whole]
	return ok
}
