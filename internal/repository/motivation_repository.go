package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

// 获取启用的激励短句
func (r *MotivationRepository) GetEnabled(ctx context.Context) ([]model.Motivation, error) {
	motivations := []model.Motivation{}
	err := r.DB.WithContext(ctx).Where("is_enabled = ?", true).Find(&motivations).Error
	return motivations, err
}

// 创建激励短句
func (r *MotivationRepository) Create(ctx context.Context, motivation *model.Motivation) error {
	return r.DB.WithContext(ctx).Create(motivation).Error
}
