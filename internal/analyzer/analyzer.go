// Package analyzer implements the text analysis pipeline: word-count
// validation, stylistic feature extraction, verdict mapping, and response
// assembly around the external classifier's probability.
package analyzer

import (
	"context"
	"fmt"

	"github.com/mk-manish1105/TruthMark/internal/classifier"
	"github.com/mk-manish1105/TruthMark/models"
)

const modelNote = "This result is based on a probabilistic AI-vs-human classifier trained on multiple datasets."

// Limitation texts are part of the response contract; order is preserved
// for display reproducibility.
var limitations = []string{
	"This system cannot guarantee 100% accuracy and should not be used as the only source to judge content authenticity ",
	"Text written by humans with very formal or repetitive style may sometimes appear AI-generated.",
	"AI-generated text that is heavily edited by humans may not be detected correctly.",
	"This tool does not identify which AI tool was used, only the likelihood of AI involvement.",
}

// Analyzer composes the classifier, feature extractor, and verdict mapping
// into a single analysis result.
type Analyzer struct {
	cls classifier.Classifier
}

// New creates an Analyzer around a classifier handle. The handle is shared
// across requests and must be safe for concurrent use.
func New(cls classifier.Classifier) *Analyzer {
	return &Analyzer{cls: cls}
}

// Analyze scores a validated text and assembles the full response. A
// classifier failure returns an error with no partial response; the
// contract has no degraded mode.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.AnalyzeResponse, error) {
	raw, err := a.cls.Infer(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	prob := classifier.Clamp(raw)

	v := ClassifyScore(prob)
	breakdown := ExtractFeatures(text)

	return &models.AnalyzeResponse{
		OverallAIScore:    v.Score,
		OverallHumanScore: round2(100 - v.Score),
		Verdict:           v.Verdict,
		Confidence:        v.Confidence,
		BadgeColor:        v.BadgeColor,
		Breakdown: models.Breakdown{
			PerplexityProxyRepetition: breakdown.Repetition,
			VocabularyRichnessProxy:   breakdown.VocabRichness,
			SyntacticVariationProxy:   breakdown.SyntacticVariation,
		},
		ModelNote:   modelNote,
		Limitations: limitations,
	}, nil
}
