package models

// BatchAnalyzeRequest represents a request to analyze multiple passages
type BatchAnalyzeRequest []struct {
	Text string `json:"text" binding:"required,min=10"`
}

// BatchAnalyzeItem is the per-passage outcome within a batch. Exactly one
// of Result and Error is set; a failing item never fails the whole batch.
type BatchAnalyzeItem struct {
	Result *AnalyzeResponse `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// BatchAnalyzeResponse represents the response to a batch analyze request
type BatchAnalyzeResponse []BatchAnalyzeItem
