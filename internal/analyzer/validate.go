package analyzer

import (
	"errors"
	"strings"
)

// Word-count bounds for a reliable analysis. Shorter passages give the
// model too little signal; longer ones exceed its sequence window.
const (
	MinWords = 50
	MaxWords = 350
)

// Validation failures are client errors. The messages are part of the API
// contract and returned to callers verbatim.
var (
	ErrTooShort = errors.New("Minimum 50 words required for reliable analysis.")
	ErrTooLong  = errors.New("Maximum 350 words allowed. Please shorten the text.")
)

// Validate trims the text and checks its whitespace-delimited word count
// against [MinWords, MaxWords]. On success it returns the trimmed text and
// the word count.
func Validate(text string) (string, int, error) {
	trimmed := strings.TrimSpace(text)
	wc := len(strings.Fields(trimmed))

	if wc < MinWords {
		return "", wc, ErrTooShort
	}
	if wc > MaxWords {
		return "", wc, ErrTooLong
	}
	return trimmed, wc, nil
}
