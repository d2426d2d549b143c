// Package chars implements the scalar-level Unicode predicates the
// tokenizer's pre-tokenizer and matcher are built on: control/format/
// surrogate/private-use detection, whitespace, punctuation, and CJK range
// tests.
package chars

import "unicode"

// IsControl reports whether r is a C0/C1 control character (category Cc).
func IsControl(r rune) bool {
	return unicode.In(r, unicode.Cc)
}

// IsFormat reports whether r is a format character (category Cf), such as
// the zero-width joiner/non-joiner.
func IsFormat(r rune) bool {
	return unicode.In(r, unicode.Cf)
}

// IsSurrogate reports whether r is a UTF-16 surrogate code point (category
// Cs). These only appear in input via invalid UTF-8 decoding to U+FFFD or
// via direct injection of lone surrogates as Go runes.
func IsSurrogate(r rune) bool {
	return unicode.In(r, unicode.Cs)
}

// IsPrivateUse reports whether r is in a private-use area (category Co).
func IsPrivateUse(r rune) bool {
	return unicode.In(r, unicode.Co)
}

// IsReplacement reports whether r is the Unicode replacement character
// U+FFFD, typically produced when invalid UTF-8 is decoded.
func IsReplacement(r rune) bool {
	return r == 0xFFFD
}

// IsNonSpacingMark reports whether r is a non-spacing combining mark
// (category Mn) — the class of diacritic stripped by StripDiacritics.
func IsNonSpacingMark(r rune) bool {
	return unicode.In(r, unicode.Mn)
}

// IsWhitespace reports whether r is a whitespace separator: ASCII tab,
// newline, carriage return, space, or any Unicode space separator (Zs).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return unicode.In(r, unicode.Zs)
}

// IsPunctuation reports whether r is punctuation: any ASCII byte in
// !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~, or any code point whose general
// category begins with P.
func IsPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

// IsCJK reports whether r falls within a CJK ideograph range. Each such
// code point is treated as its own word by the pre-tokenizer.
func IsCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0x20000 && r <= 0x2A6DF:
		return true
	case r >= 0x2A700 && r <= 0x2B73F:
		return true
	case r >= 0x2B740 && r <= 0x2B81F:
		return true
	case r >= 0x2B820 && r <= 0x2CEAF:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	case r >= 0x2F800 && r <= 0x2FA1F:
		return true
	}
	return false
}

// IsCleanable reports whether r should be dropped by the cleaning pass:
// control, format, surrogate, private-use, or the replacement character.
// Tab, newline, and carriage return are excluded — the splitter treats
// them as whitespace rather than the cleaner dropping them.
func IsCleanable(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return IsControl(r) || IsFormat(r) || IsSurrogate(r) || IsPrivateUse(r) || IsReplacement(r)
}
