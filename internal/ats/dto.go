package ats

// KeywordMatch is one keyword row in a score response.
type KeywordMatch struct {
	Keyword   string `json:"keyword"`
	Matched   bool   `json:"matched"`
	Suggested bool   `json:"suggested"`
	Category  string `json:"category"`
}

// ScoreResponse is the outward-facing representation of a score.
type ScoreResponse struct {
	Score             int            `json:"score"`
	MatchedKeywords   []KeywordMatch `json:"matchedKeywords"`
	MissingKeywords   []KeywordMatch `json:"missingKeywords"`
	SuggestedKeywords []KeywordMatch `json:"suggestedKeywords"`
}

func toResponse(result ScoreResult) ScoreResponse {
	resp := ScoreResponse{
		Score:           result.Score,
		MatchedKeywords: make([]KeywordMatch, 0, len(result.Matched)),
		MissingKeywords: make([]KeywordMatch, 0, len(result.Missing)),
	}
	for _, kw := range result.Matched {
		resp.MatchedKeywords = append(resp.MatchedKeywords, KeywordMatch{Keyword: kw, Matched: true, Category: "keyword"})
	}
	for _, kw := range result.Missing {
		resp.MissingKeywords = append(resp.MissingKeywords, KeywordMatch{Keyword: kw, Category: "keyword"})
	}
	// Suggestions are a fixed placeholder pair until real suggestion logic
	// exists.
	resp.SuggestedKeywords = []KeywordMatch{
		{Keyword: "REST APIs", Suggested: true, Category: "skill"},
		{Keyword: "agile", Suggested: true, Category: "keyword"},
	}
	return resp
}
