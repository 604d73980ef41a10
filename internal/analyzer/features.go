package analyzer

import (
	"math"
	"strings"
	"unicode"
)

// Breakdown carries the three stylistic signals as percentages in
// [0, 100], rounded to 2 decimal places.
//
// VocabRichness and SyntacticVariation store the inverse of what their
// names suggest: low lexical diversity and uniform sentence lengths both
// push the scores toward 100. Downstream display depends on this
// direction, so it is kept as-is.
type Breakdown struct {
	Repetition         float64 `json:"repetition"`
	VocabRichness      float64 `json:"vocab_richness"`
	SyntacticVariation float64 `json:"syntactic_variation"`
}

var sentenceTerminators = strings.NewReplacer("?", ".", "!", ".")

// ExtractFeatures computes the stylistic breakdown for a passage. It is
// deterministic and never fails; degenerate inputs clamp to boundary
// values instead of faulting.
func ExtractFeatures(text string) Breakdown {
	tokens := tokenize(text)
	n := len(tokens)
	if n < 1 {
		n = 1
	}

	// Repetitive text reuses trigrams, driving distinct/total toward 0.
	distinctTrigrams := make(map[string]struct{})
	totalTrigrams := 0
	for i := 0; i+3 <= len(tokens); i++ {
		distinctTrigrams[strings.Join(tokens[i:i+3], " ")] = struct{}{}
		totalTrigrams++
	}
	denom := totalTrigrams
	if denom < 1 {
		denom = 1
	}
	repetition := 1 - float64(len(distinctTrigrams))/float64(denom)

	types := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		types[t] = struct{}{}
	}
	ttr := float64(len(types)) / float64(n)
	vocabRichness := 1 - ttr

	syntVar := 0.0
	lengths := sentenceLengths(text)
	if len(lengths) > 1 {
		mean, std := meanStddev(lengths)
		syntVar = 1 - std/(mean+1e-6)
	}

	return Breakdown{
		Repetition:         toScore(repetition),
		VocabRichness:      toScore(vocabRichness),
		SyntacticVariation: toScore(syntVar),
	}
}

// tokenize lowercases whitespace-delimited words, keeping only tokens made
// entirely of letters and digits. Punctuation-only tokens are dropped;
// mixed alphanumeric tokens pass.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if isAlnum(f) {
			tokens = append(tokens, strings.ToLower(f))
		}
	}
	return tokens
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// sentenceLengths splits the text into sentences, treating '?', '!' and
// '.' as uniform terminators, and returns the word count of each
// non-empty sentence.
func sentenceLengths(text string) []float64 {
	parts := strings.Split(sentenceTerminators.Replace(text), ".")
	lengths := make([]float64, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		lengths = append(lengths, float64(len(strings.Fields(p))))
	}
	return lengths
}

// meanStddev returns the mean and population standard deviation.
func meanStddev(vals []float64) (float64, float64) {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(vals)))
}

// toScore clamps to [0, 1], scales to a percentage, and rounds to 2
// decimal places, in that order.
func toScore(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return round2(v * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
