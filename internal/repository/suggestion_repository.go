package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

// FindByOwnerDay 当天没有建议时返回 nil, nil
func (r *SuggestionRepository) FindByOwnerDay(ctx context.Context, ownerID, day string) (*model.DailySuggestion, error) {
	var suggestions []model.DailySuggestion
	err := r.DB.WithContext(ctx).
		Where("owner_id = ? AND day = ?", ownerID, day).
		Limit(1).
		Find(&suggestions).Error
	if err != nil || len(suggestions) == 0 {
		return nil, err
	}
	return &suggestions[0], nil
}

// Create 同一天重复插入返回 ErrConflict
func (r *SuggestionRepository) Create(ctx context.Context, suggestion *model.DailySuggestion) error {
	return translateError(r.DB.WithContext(ctx).Create(suggestion).Error, "daily suggestion")
}
