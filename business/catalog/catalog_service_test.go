package catalog

import (
	"context"
	"errors"
	"testing"

	"xmasGiftAI/domain"
	"xmasGiftAI/internal/repository/memory"
)

func newService(t *testing.T) *catalogService {
	t.Helper()
	repo, err := memory.NewDealRepository(memory.SeedDeals())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return NewCatalogService(repo)
}

func TestGetDeals_Pagination(t *testing.T) {
	svc := newService(t)
	total := len(memory.SeedDeals())

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantLen   int
		wantFirst uint64
		wantErr   error
	}{
		{name: "first page", skip: 0, limit: 10, wantLen: 10, wantFirst: 1},
		{name: "second page", skip: 10, limit: 5, wantLen: 5, wantFirst: 11},
		{name: "last partial page", skip: total - 2, limit: 10, wantLen: 2, wantFirst: uint64(total - 1)},
		{name: "past the end", skip: total + 5, limit: 10, wantLen: 0},
		{name: "negative skip", skip: -1, limit: 10, wantErr: ErrInvalidPagination},
		{name: "zero limit", skip: 0, limit: 0, wantErr: ErrInvalidPagination},
		{name: "limit too large", skip: 0, limit: MaxPageSize + 1, wantErr: ErrInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deals, err := svc.GetDeals(context.Background(), tt.skip, tt.limit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(deals) != tt.wantLen {
				t.Fatalf("expected %d deals, got %d", tt.wantLen, len(deals))
			}
			if tt.wantLen > 0 && deals[0].ID != tt.wantFirst {
				t.Errorf("expected first id %d, got %d", tt.wantFirst, deals[0].ID)
			}
		})
	}
}

func TestGetDealsByCategory(t *testing.T) {
	svc := newService(t)

	deals, err := svc.GetDealsByCategory(context.Background(), "Beauty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range deals {
		if d.Category != domain.CategoryBeauty {
			t.Errorf("deal %d has category %s", d.ID, d.Category)
		}
	}

	if _, err := svc.GetDealsByCategory(context.Background(), "books"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestGetDealsByCategory_EmptyIsNotFound(t *testing.T) {
	repo, err := memory.NewDealRepository(memory.SeedDeals()[:1])
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	svc := NewCatalogService(repo)

	if _, err := svc.GetDealsByCategory(context.Background(), "toys"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchDeals(t *testing.T) {
	svc := newService(t)

	if _, err := svc.SearchDeals(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}

	deals, err := svc.SearchDeals(context.Background(), " zaino ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("expected 1 deal, got %d", len(deals))
	}
}

func TestGetDealByID(t *testing.T) {
	svc := newService(t)

	if _, err := svc.GetDealByID(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetDealByID(context.Background(), 5000); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	d, err := svc.GetDealByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != 1 {
		t.Errorf("expected id 1, got %d", d.ID)
	}
}

func TestGetCategories(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != len(domain.AllCategories()) {
		t.Fatalf("expected %d categories, got %d", len(domain.AllCategories()), len(summaries))
	}

	total := 0
	for _, s := range summaries {
		total += s.DealCount
	}
	if total != len(memory.SeedDeals()) {
		t.Errorf("category counts sum to %d, want %d", total, len(memory.SeedDeals()))
	}
}
