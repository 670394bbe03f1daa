package suggest

import (
	"sort"

	"xmasGiftAI/domain"
)

type ScoredDeal struct {
	Deal  domain.Deal
	Score int
}

// FilterByBudget keeps deals priced within [min, max], in catalog order.
func FilterByBudget(deals []domain.Deal, min, max float64) []domain.Deal {
	out := make([]domain.Deal, 0, len(deals))
	for _, d := range deals {
		if d.Price >= min && d.Price <= max {
			out = append(out, d)
		}
	}
	return out
}

// Rank drops candidates without signal, orders the rest by descending score
// and keeps at most maxResults. Equal scores keep their input order.
func Rank(candidates []ScoredDeal, maxResults int) []ScoredDeal {
	ranked := make([]ScoredDeal, 0, len(candidates))
	for _, c := range candidates {
		if c.Score > 0 {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if maxResults < 0 {
		maxResults = 0
	}
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return ranked
}
