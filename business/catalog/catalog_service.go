package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"xmasGiftAI/domain"
	"xmasGiftAI/pkg/logger"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrNotFound          = domain.ErrDealNotFound
	ErrInvalidCategory   = errors.New("invalid category")
	ErrEmptyQuery        = errors.New("search query cannot be empty")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidID         = errors.New("invalid deal id")
)

// DealRepository contract interface
type DealRepository interface {
	FindAll(ctx context.Context) ([]domain.Deal, error)
	FindByID(ctx context.Context, id uint64) (domain.Deal, error)
	FindByCategory(ctx context.Context, category domain.DealCategory) ([]domain.Deal, error)
	Search(ctx context.Context, query string) ([]domain.Deal, error)
}

type catalogService struct {
	dealRepo DealRepository
}

func NewCatalogService(dealRepo DealRepository) *catalogService {
	return &catalogService{
		dealRepo: dealRepo,
	}
}

func (s *catalogService) GetDeals(ctx context.Context, skip, limit int) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get deals")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidPagination)
	}

	if limit < 1 || limit > MaxPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, MaxPageSize)
	}

	deals, err := s.dealRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all deals", "error", err)
		return nil, err
	}

	if skip >= len(deals) {
		return []domain.Deal{}, nil
	}

	end := skip + limit
	if end > len(deals) {
		end = len(deals)
	}

	return deals[skip:end], nil
}

func (s *catalogService) GetDealByID(ctx context.Context, id uint64) (domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get deal by id")
		return domain.Deal{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.Deal{}, ErrInvalidID
	}

	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find deal", "id", id, "error", err)
		return domain.Deal{}, err
	}

	return deal, nil
}

func (s *catalogService) GetDealsByCategory(ctx context.Context, category string) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get deals by category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	c, err := domain.ParseDealCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	deals, err := s.dealRepo.FindByCategory(ctx, c)
	if err != nil {
		logger.Error("failed to find deals by category", "category", c, "error", err)
		return nil, err
	}

	if len(deals) == 0 {
		return nil, fmt.Errorf("%w: no deals in category '%s'", ErrNotFound, c)
	}

	return deals, nil
}

func (s *catalogService) SearchDeals(ctx context.Context, query string) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching deals")
		return nil, fmt.Errorf("context error: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	deals, err := s.dealRepo.Search(ctx, query)
	if err != nil {
		logger.Error("failed to search deals", "query", query, "error", err)
		return nil, err
	}

	return deals, nil
}

// GetCategories lists every category with its deal count, including empty ones.
func (s *catalogService) GetCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	deals, err := s.dealRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all deals", "error", err)
		return nil, err
	}

	counts := make(map[domain.DealCategory]int)
	for _, d := range deals {
		counts[d.Category]++
	}

	summaries := make([]domain.CategorySummary, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		summaries = append(summaries, domain.CategorySummary{Category: c, DealCount: counts[c]})
	}

	return summaries, nil
}
