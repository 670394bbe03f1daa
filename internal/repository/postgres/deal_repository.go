package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"xmasGiftAI/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealRepository struct {
	DB *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{
		DB: db,
	}
}

func (r *DealRepository) FindAll(ctx context.Context) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var deals []domain.Deal
	err := r.DB.WithContext(ctx).Order("id").Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deals: %w", err)
	}

	return deals, nil
}

func (r *DealRepository) FindByID(ctx context.Context, id uint64) (domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Deal{}, fmt.Errorf("context error: %w", err)
	}

	var deal domain.Deal

	err := r.DB.WithContext(ctx).First(&deal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Deal{}, domain.ErrDealNotFound
		}
		return domain.Deal{}, fmt.Errorf("failed to find deal: %w", err)
	}

	return deal, nil
}

func (r *DealRepository) FindByCategory(ctx context.Context, category domain.DealCategory) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	deals := []domain.Deal{}
	err := r.DB.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("id").
		Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deals by category: %w", err)
	}

	return deals, nil
}

func (r *DealRepository) Search(ctx context.Context, query string) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	pattern := "%" + escapeLike(query) + "%"

	deals := []domain.Deal{}
	err := r.DB.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id").
		Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search deals: %w", err)
	}

	return deals, nil
}

// Seed creates the deals table and inserts deals that are not present yet.
// Existing rows are left untouched.
func (r *DealRepository) Seed(ctx context.Context, deals []domain.Deal) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	for _, d := range deals {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	if err := r.DB.WithContext(ctx).AutoMigrate(&domain.Deal{}); err != nil {
		return fmt.Errorf("failed to migrate deals: %w", err)
	}

	if len(deals) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&deals).Error
	if err != nil {
		return fmt.Errorf("failed to seed deals: %w", err)
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
