package chars

import "testing"

func TestIsCleanable(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'\t', false}, // claimed by the splitter, not the cleaner
		{'\n', false},
		{'\r', false},
		{0x00, true},
		{0x1F, true},
		{'a', false},
	}
	for _, c := range cases {
		if got := IsCleanable(c.r); got != c.want {
			t.Errorf("IsCleanable(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsReplacement(t *testing.T) {
	if !IsReplacement(0xFFFD) {
		t.Error("expected U+FFFD to be the replacement character")
	}
	if IsReplacement('a') {
		t.Error("did not expect 'a' to be the replacement character")
	}
}

func TestIsWhitespace(t *testing.T) {
	if !IsWhitespace(' ') || !IsWhitespace('\t') || !IsWhitespace('\n') || !IsWhitespace('\r') {
		t.Error("expected ASCII whitespace to be recognized")
	}
	if IsWhitespace('a') {
		t.Error("did not expect 'a' to be whitespace")
	}
	// U+3000 IDEOGRAPHIC SPACE is category Zs.
	if !IsWhitespace(0x3000) {
		t.Error("expected U+3000 (Zs) to be whitespace")
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, r := range []rune{'!', '/', ':', '@', '[', '`', '{', '~'} {
		if !IsPunctuation(r) {
			t.Errorf("expected %q to be punctuation", r)
		}
	}
	if IsPunctuation('a') || IsPunctuation('0') {
		t.Error("did not expect letters/digits to be punctuation")
	}
	// U+2019 RIGHT SINGLE QUOTATION MARK is category Pf.
	if !IsPunctuation(0x2019) {
		t.Error("expected U+2019 (Pf) to be punctuation")
	}
}

func TestIsCJK(t *testing.T) {
	if !IsCJK('你') || !IsCJK('好') {
		t.Error("expected CJK unified ideographs to be recognized")
	}
	if IsCJK('a') || IsCJK('1') {
		t.Error("did not expect latin letters/digits to be CJK")
	}
}

func TestIsNonSpacingMark(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT.
	if !IsNonSpacingMark(0x0301) {
		t.Error("expected combining acute accent to be a non-spacing mark")
	}
	if IsNonSpacingMark('a') {
		t.Error("did not expect 'a' to be a non-spacing mark")
	}
}
