package analyzer

import (
	"errors"
	"strings"
	"testing"
)

func wordsOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestValidateBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		words   int
		wantErr error
	}{
		{"just below minimum", 49, ErrTooShort},
		{"at minimum", 50, nil},
		{"at maximum", 350, nil},
		{"just above maximum", 351, ErrTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, wc, err := Validate(wordsOf(tc.words))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if wc != tc.words {
				t.Fatalf("expected word count %d, got %d", tc.words, wc)
			}
			if text != wordsOf(tc.words) {
				t.Fatalf("validated text altered: %q", text)
			}
		})
	}
}

func TestValidateTrimsWhitespace(t *testing.T) {
	padded := "\n\t  " + wordsOf(60) + "   \n"
	text, wc, err := Validate(padded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wc != 60 {
		t.Fatalf("expected 60 words, got %d", wc)
	}
	if text != wordsOf(60) {
		t.Fatalf("expected trimmed text, got %q", text)
	}
}

func TestValidateErrorMessages(t *testing.T) {
	if got := ErrTooShort.Error(); got != "Minimum 50 words required for reliable analysis." {
		t.Fatalf("unexpected too-short message: %q", got)
	}
	if got := ErrTooLong.Error(); got != "Maximum 350 words allowed. Please shorten the text." {
		t.Fatalf("unexpected too-long message: %q", got)
	}
}

func TestValidateEmptyText(t *testing.T) {
	if _, _, err := Validate("   \n\t "); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort for whitespace-only text, got %v", err)
	}
}
