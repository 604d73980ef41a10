package analyzer

// Verdict is the tier assigned to an AI-likelihood score. The three
// display fields are mutually consistent; each score maps to exactly one
// tier.
type Verdict struct {
	Score      float64
	Verdict    string
	Confidence string
	BadgeColor string
}

// verdictTiers maps score ranges to display tiers. Evaluated top-down with
// inclusive lower bounds, so first match wins: 70.00 and 40.00 land on the
// AI-leaning side of their boundaries.
var verdictTiers = []struct {
	minScore   float64
	verdict    string
	confidence string
	badgeColor string
}{
	{70, "Likely AI-Generated", "High", "red"},
	{40, "Mixed/Uncertain", "Medium", "yellow"},
	{0, "Likely Human-Created", "Low", "green"},
}

// ClassifyScore maps a clamped probability in [0, 1] to its verdict tier.
func ClassifyScore(probability float64) Verdict {
	score := round2(probability * 100)
	for _, tier := range verdictTiers {
		if score >= tier.minScore {
			return Verdict{
				Score:      score,
				Verdict:    tier.verdict,
				Confidence: tier.confidence,
				BadgeColor: tier.badgeColor,
			}
		}
	}
	// score is non-negative, so the zero tier always matches; kept for
	// completeness.
	last := verdictTiers[len(verdictTiers)-1]
	return Verdict{Score: score, Verdict: last.verdict, Confidence: last.confidence, BadgeColor: last.badgeColor}
}
