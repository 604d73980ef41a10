package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyScoreTiers(t *testing.T) {
	cases := []struct {
		probability float64
		want        Verdict
	}{
		{0.0, Verdict{Score: 0, Verdict: "Likely Human-Created", Confidence: "Low", BadgeColor: "green"}},
		{0.39, Verdict{Score: 39, Verdict: "Likely Human-Created", Confidence: "Low", BadgeColor: "green"}},
		{0.40, Verdict{Score: 40, Verdict: "Mixed/Uncertain", Confidence: "Medium", BadgeColor: "yellow"}},
		{0.69, Verdict{Score: 69, Verdict: "Mixed/Uncertain", Confidence: "Medium", BadgeColor: "yellow"}},
		{0.70, Verdict{Score: 70, Verdict: "Likely AI-Generated", Confidence: "High", BadgeColor: "red"}},
		{1.0, Verdict{Score: 100, Verdict: "Likely AI-Generated", Confidence: "High", BadgeColor: "red"}},
	}
	for _, tc := range cases {
		got := ClassifyScore(tc.probability)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("probability %.2f: unexpected verdict (-want +got):\n%s", tc.probability, diff)
		}
	}
}

func TestClassifyScoreRoundsToTwoDecimals(t *testing.T) {
	got := ClassifyScore(0.85432)
	if got.Score != 85.43 {
		t.Fatalf("expected score 85.43, got %.4f", got.Score)
	}
}

func TestClassifyScoreBoundariesLeanAI(t *testing.T) {
	// Exactly 70.00 and 40.00 belong to the higher tier.
	if v := ClassifyScore(0.7); v.Verdict != "Likely AI-Generated" {
		t.Fatalf("expected 70.00 to classify as AI, got %q", v.Verdict)
	}
	if v := ClassifyScore(0.4); v.Verdict != "Mixed/Uncertain" {
		t.Fatalf("expected 40.00 to classify as mixed, got %q", v.Verdict)
	}
}
