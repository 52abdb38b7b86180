package repository

import (
	"context"
	"interview_readiness_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SkillHistoryRepository struct {
	DB *gorm.DB
}

func NewSkillHistoryRepository(db *gorm.DB) *SkillHistoryRepository {
	return &SkillHistoryRepository{DB: db}
}

// DeltaTotals 置信度变化汇总
type DeltaTotals struct {
	Count      int64
	TotalDelta float64
}

// WindowTotals 窗口内记录数与提升记录数
type WindowTotals struct {
	Total     int64
	Improving int64
}

func (r *SkillHistoryRepository) Create(ctx context.Context, entry *model.SkillHistory) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

func (r *SkillHistoryRepository) DeltaTotals(ctx context.Context, ownerID string) (DeltaTotals, error) {
	var totals DeltaTotals
	err := r.DB.WithContext(ctx).
		Model(&model.SkillHistory{}).
		Select("COUNT(*) AS count, COALESCE(SUM(new_confidence - old_confidence), 0) AS total_delta").
		Where("owner_id = ?", ownerID).
		Scan(&totals).Error
	return totals, err
}

// CountDistinctDays 统计 [fromDay, toDay] 内有记录的天数
func (r *SkillHistoryRepository) CountDistinctDays(ctx context.Context, ownerID, fromDay, toDay string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.SkillHistory{}).
		Where("owner_id = ? AND change_day >= ? AND change_day <= ?", ownerID, fromDay, toDay).
		Distinct("change_day").
		Count(&count).Error
	return count, err
}

func (r *SkillHistoryRepository) WindowTotals(ctx context.Context, ownerID string, since time.Time) (WindowTotals, error) {
	var totals WindowTotals
	err := r.DB.WithContext(ctx).
		Model(&model.SkillHistory{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN new_confidence > old_confidence THEN 1 ELSE 0 END), 0) AS improving").
		Where("owner_id = ? AND change_date >= ?", ownerID, since.UTC()).
		Scan(&totals).Error
	return totals, err
}

// DailyDeltas 按天分组，升序，只返回有记录的日期
func (r *SkillHistoryRepository) DailyDeltas(ctx context.Context, ownerID, fromDay string) ([]model.DayDelta, error) {
	rows := []model.DayDelta{}
	err := r.DB.WithContext(ctx).
		Model(&model.SkillHistory{}).
		Select("change_day AS day, SUM(new_confidence - old_confidence) AS total_delta, COUNT(*) AS updates_count").
		Where("owner_id = ? AND change_day >= ?", ownerID, fromDay).
		Group("change_day").
		Order("change_day ASC").
		Scan(&rows).Error
	return rows, err
}
