package entities

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBillingMethod(t *testing.T) {
	cases := []struct {
		in   string
		want BillingMethod
	}{
		{"W", BillingMethodWord},
		{"WORD", BillingMethodWord},
		{"word", BillingMethodWord},
		{"  w ", BillingMethodWord},
		{"P", BillingMethodParagraph},
		{"PARAGRAPH", BillingMethodParagraph},
		{"paragraph", BillingMethodParagraph},
		{"C", BillingMethodCharacter},
		{"CHARACTER", BillingMethodCharacter},
		{"Character", BillingMethodCharacter},
		{"PG", BillingMethodPage},
		{"pg", BillingMethodPage},
		{"PAGE", BillingMethodPage},
	}

	for _, c := range cases {
		got, err := ParseBillingMethod(c.in)
		if err != nil {
			t.Fatalf("ParseBillingMethod(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseBillingMethod(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseBillingMethod_Idempotent(t *testing.T) {
	for _, m := range []BillingMethod{BillingMethodWord, BillingMethodParagraph, BillingMethodCharacter, BillingMethodPage} {
		got, err := ParseBillingMethod(string(m))
		if err != nil {
			t.Fatalf("ParseBillingMethod(%q): unexpected error %v", m, err)
		}
		if got != m {
			t.Fatalf("ParseBillingMethod(%q) = %q, want unchanged", m, got)
		}
	}
}

func TestParseBillingMethod_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "X", "WORDS", "PAGES", "param"} {
		_, err := ParseBillingMethod(in)
		if !errors.Is(err, ErrUnknownBillingMethod) {
			t.Fatalf("ParseBillingMethod(%q): expected ErrUnknownBillingMethod, got %v", in, err)
		}
	}
}

func TestParseBillingMethod_ErrorNamesValue(t *testing.T) {
	_, err := ParseBillingMethod("LINE")
	if err == nil || !strings.Contains(err.Error(), "LINE") {
		t.Fatalf("expected error to name the offending value, got %v", err)
	}
}
