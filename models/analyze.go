package models

// AnalyzeRequest represents a request to analyze a passage of text
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required,min=10"`
}

// Breakdown holds the auxiliary stylistic signals under their display keys.
// Each score is a percentage in [0, 100] rounded to 2 decimal places.
type Breakdown struct {
	PerplexityProxyRepetition float64 `json:"Perplexity_proxy_Repetition"`
	VocabularyRichnessProxy   float64 `json:"Vocabulary_Richness_proxy"`
	SyntacticVariationProxy   float64 `json:"Syntactic_Variation_proxy"`
}

// AnalyzeResponse represents the result of a text analysis
type AnalyzeResponse struct {
	OverallAIScore    float64   `json:"overall_ai_score"`
	OverallHumanScore float64   `json:"overall_human_score"`
	Verdict           string    `json:"verdict"`
	Confidence        string    `json:"confidence"`
	BadgeColor        string    `json:"badge_color"`
	Breakdown         Breakdown `json:"breakdown"`
	ModelNote         string    `json:"model_note"`
	Limitations       []string  `json:"limitations"`
}
