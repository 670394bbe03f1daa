package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"xmasGiftAI/domain"
	"xmasGiftAI/pkg/logger"
)

const (
	MinResults = 1
	MaxResults = 25
)

var ErrInvalidRequest = errors.New("invalid suggestion request")

// DealRepository contract interface
type DealRepository interface {
	FindAll(ctx context.Context) ([]domain.Deal, error)
}

type Service struct {
	dealRepo DealRepository
	scorer   *Scorer
}

func NewService(dealRepo DealRepository, lexicon *Lexicon) *Service {
	return &Service{
		dealRepo: dealRepo,
		scorer:   NewScorer(lexicon),
	}
}

// Suggest returns the deals most relevant to the recipient description within budget.
func (s *Service) Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResponse, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when suggesting deals", "error", err)
		return domain.SuggestionResponse{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		logger.Warn("rejected suggestion request", "request_id", RequestIDFromContext(ctx), "error", err)
		return domain.SuggestionResponse{}, err
	}

	candidates, err := s.budgetCandidates(ctx, req)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	description := strings.ToLower(req.RecipientDescription)
	scored := make([]ScoredDeal, 0, len(candidates))
	for _, d := range candidates {
		scored = append(scored, ScoredDeal{Deal: d, Score: s.scorer.Score(d, description)})
	}

	ranked := Rank(scored, req.MaxResults)
	deals := make([]domain.Deal, 0, len(ranked))
	for _, r := range ranked {
		deals = append(deals, r.Deal)
	}

	logger.Debug("suggestion computed",
		"request_id", RequestIDFromContext(ctx),
		"budget_min", req.BudgetMin,
		"budget_max", req.BudgetMax,
		"candidates", len(candidates),
		"results", len(deals),
	)

	return domain.SuggestionResponse{
		RecipientDescription: req.RecipientDescription,
		SuggestedDeals:       deals,
		Reasoning:            reasoning(req),
	}, nil
}

// Explain runs the same pipeline as Suggest and keeps the per-deal scoring signals.
func (s *Service) Explain(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionExplanation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when explaining suggestion", "error", err)
		return domain.SuggestionExplanation{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		return domain.SuggestionExplanation{}, err
	}

	candidates, err := s.budgetCandidates(ctx, req)
	if err != nil {
		return domain.SuggestionExplanation{}, err
	}

	description := strings.ToLower(req.RecipientDescription)
	explained := make(map[uint64]domain.ScoredSuggestion, len(candidates))
	scored := make([]ScoredDeal, 0, len(candidates))
	for _, d := range candidates {
		e := s.scorer.Explain(d, description)
		explained[d.ID] = e
		scored = append(scored, ScoredDeal{Deal: d, Score: e.Score})
	}

	ranked := Rank(scored, req.MaxResults)
	suggestions := make([]domain.ScoredSuggestion, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, explained[r.Deal.ID])
	}

	return domain.SuggestionExplanation{
		RecipientDescription: req.RecipientDescription,
		BudgetFiltered:       len(candidates),
		Suggestions:          suggestions,
		Reasoning:            reasoning(req),
	}, nil
}

func (s *Service) budgetCandidates(ctx context.Context, req domain.SuggestionRequest) ([]domain.Deal, error) {
	all, err := s.dealRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return FilterByBudget(all, req.BudgetMin, req.BudgetMax), nil
}

func validateRequest(req domain.SuggestionRequest) error {
	if req.MaxResults < MinResults || req.MaxResults > MaxResults {
		return fmt.Errorf("%w: max_results must be between %d and %d", ErrInvalidRequest, MinResults, MaxResults)
	}

	if req.BudgetMin < 0 || req.BudgetMax < 0 {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidRequest)
	}

	if req.BudgetMin > req.BudgetMax {
		return fmt.Errorf("%w: budget_min cannot be greater than budget_max", ErrInvalidRequest)
	}

	return nil
}

func reasoning(req domain.SuggestionRequest) string {
	return fmt.Sprintf(
		"Suggerimenti personalizzati per '%s' con budget €%.0f-€%.0f. Mostrati solo prodotti considerati rilevanti.",
		req.RecipientDescription, req.BudgetMin, req.BudgetMax,
	)
}
