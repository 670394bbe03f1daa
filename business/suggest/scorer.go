package suggest

import (
	"strings"
	"unicode/utf8"

	"xmasGiftAI/domain"
)

const (
	// TextMatchBonus is added for every description word found in a deal's text.
	TextMatchBonus = 3

	// words this short or shorter never count as text matches
	minMatchWordLength = 3
)

type Scorer struct {
	lexicon *Lexicon
	bonus   int
}

func NewScorer(lexicon *Lexicon) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Scorer{lexicon: lexicon, bonus: TextMatchBonus}
}

// Score returns the relevance of deal for a lowercase recipient description.
func (s *Scorer) Score(deal domain.Deal, description string) int {
	score := s.lexicon.CategoryBonus(description, deal.Category)
	score += s.bonus * len(matchedWords(deal, uniqueWords(description)))
	return score
}

// Explain scores deal and reports which keywords and words contributed.
func (s *Scorer) Explain(deal domain.Deal, description string) domain.ScoredSuggestion {
	var keywords []string
	for _, e := range s.lexicon.entries {
		if e.Weights[deal.Category] > 0 && strings.Contains(description, e.Keyword) {
			keywords = append(keywords, e.Keyword)
		}
	}

	words := matchedWords(deal, uniqueWords(description))

	return domain.ScoredSuggestion{
		Deal:            deal,
		Score:           s.lexicon.CategoryBonus(description, deal.Category) + s.bonus*len(words),
		MatchedKeywords: keywords,
		MatchedWords:    words,
	}
}

// uniqueWords splits on whitespace and keeps the first occurrence of each
// word longer than minMatchWordLength runes.
func uniqueWords(description string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.Fields(description) {
		if utf8.RuneCountInString(w) <= minMatchWordLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func matchedWords(deal domain.Deal, words []string) []string {
	if len(words) == 0 {
		return nil
	}

	text := strings.ToLower(deal.Title + " " + deal.Description)
	var matched []string
	for _, w := range words {
		if strings.Contains(text, w) {
			matched = append(matched, w)
		}
	}
	return matched
}
