package normalize

import "testing"

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"cafe with acute accent", "café", "cafe"},
		{"resume with two accents", "résumé", "resume"},
		{"naive with diaeresis", "naïve", "naive"},
		{"plain ascii unchanged", "hello", "hello"},
		{"uppercase with diacritic", "HÉLLO", "hello"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := StripDiacritics(c.in, NFC)
			if got != c.want {
				t.Errorf("StripDiacritics(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestStripDiacriticsNoAllocationPath(t *testing.T) {
	in := "hello world"
	got := StripDiacritics(in, NFC)
	if got != in {
		t.Errorf("expected unchanged string, got %q", got)
	}
}

func TestNormalizeForms(t *testing.T) {
	// "e with acute accent" can be encoded as a single precomposed code
	// point (NFC, U+00E9) or as "e" followed by a combining acute accent
	// (NFD); normalizing should converge them.
	nfcForm := "é"
	nfdForm := "é"

	if Normalize(NFC, nfdForm) != nfcForm {
		t.Error("expected NFD input to normalize to the NFC form")
	}
	if Normalize(NFD, nfcForm) != nfdForm {
		t.Error("expected NFC input to normalize to the NFD form")
	}
}

func TestIsNormalized(t *testing.T) {
	if !IsNormalized(NFC, "hello") {
		t.Error("expected plain ASCII to already be NFC-normalized")
	}
	if !IsNormalized(NFD, "é") {
		t.Error("expected decomposed form to already be NFD-normalized")
	}
}
