package domain

type SuggestionRequest struct {
	RecipientDescription string  `json:"recipient_description"`
	BudgetMin            float64 `json:"budget_min"`
	BudgetMax            float64 `json:"budget_max"`
	MaxResults           int     `json:"max_results"`
}

type SuggestionResponse struct {
	RecipientDescription string `json:"recipient_description"`
	SuggestedDeals       []Deal `json:"suggested_deals"`
	Reasoning            string `json:"reasoning"`
}

// ScoredSuggestion is a ranked deal together with the signals that produced its score.
type ScoredSuggestion struct {
	Deal            Deal     `json:"deal"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MatchedWords    []string `json:"matched_words"`
}

type SuggestionExplanation struct {
	RecipientDescription string             `json:"recipient_description"`
	BudgetFiltered       int                `json:"budget_filtered"`
	Suggestions          []ScoredSuggestion `json:"suggestions"`
	Reasoning            string             `json:"reasoning"`
}
