package memory

import (
	"context"
	"fmt"
	"strings"

	"xmasGiftAI/domain"
)

// DealRepository serves a catalog held in memory. The slice is never
// modified after construction, so concurrent reads need no locking.
type DealRepository struct {
	deals []domain.Deal
}

// NewDealRepository validates deals and rejects duplicate ids.
func NewDealRepository(deals []domain.Deal) (*DealRepository, error) {
	seen := make(map[uint64]struct{}, len(deals))
	stored := make([]domain.Deal, 0, len(deals))

	for _, d := range deals {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[d.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %d", domain.ErrInvalidDeal, d.ID)
		}
		seen[d.ID] = struct{}{}
		stored = append(stored, d)
	}

	return &DealRepository{deals: stored}, nil
}

func (r *DealRepository) FindAll(ctx context.Context) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Deal, len(r.deals))
	copy(out, r.deals)
	return out, nil
}

func (r *DealRepository) FindByID(ctx context.Context, id uint64) (domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Deal{}, fmt.Errorf("context error: %w", err)
	}

	for _, d := range r.deals {
		if d.ID == id {
			return d, nil
		}
	}

	return domain.Deal{}, domain.ErrDealNotFound
}

func (r *DealRepository) FindByCategory(ctx context.Context, category domain.DealCategory) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Deal, 0)
	for _, d := range r.deals {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

// Search matches query case-insensitively against title and description.
func (r *DealRepository) Search(ctx context.Context, query string) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := strings.ToLower(query)
	out := make([]domain.Deal, 0)
	for _, d := range r.deals {
		if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	return out, nil
}
