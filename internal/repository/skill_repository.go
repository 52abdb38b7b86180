package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return translateError(r.DB.WithContext(ctx).Create(skill).Error, "skill")
}

// FindByID 只返回属于 owner 的技能
func (r *SkillRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&skill).Error
	if err != nil {
		return nil, translateError(err, "skill")
	}
	return &skill, nil
}

func (r *SkillRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Skill, error) {
	skills := []model.Skill{}
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return translateError(r.DB.WithContext(ctx).Save(skill).Error, "skill")
}

func (r *SkillRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "skill")
	}
	return nil
}

// WeakestNames 置信度升序，相同时最近更新的优先
func (r *SkillRepository) WeakestNames(ctx context.Context, ownerID string, limit int) ([]string, error) {
	names := []string{}
	err := r.DB.WithContext(ctx).
		Model(&model.Skill{}).
		Where("owner_id = ?", ownerID).
		Order("confidence_score ASC, updated_at DESC").
		Limit(limit).
		Pluck("skill_name", &names).Error
	return names, err
}

// LowestBelow 返回置信度低于 threshold 的最弱技能，没有时返回 nil
func (r *SkillRepository) LowestBelow(ctx context.Context, ownerID string, threshold int) (*model.Skill, error) {
	var skills []model.Skill
	err := r.DB.WithContext(ctx).
		Where("owner_id = ? AND confidence_score < ?", ownerID, threshold).
		Order("confidence_score ASC, updated_at DESC").
		Limit(1).
		Find(&skills).Error
	if err != nil || len(skills) == 0 {
		return nil, err
	}
	return &skills[0], nil
}
