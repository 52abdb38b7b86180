package repository

import (
	"context"
	"interview_readiness_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) CreateSet(ctx context.Context, set *model.GeneratedQuestionSet) error {
	return r.DB.WithContext(ctx).Create(set).Error
}

func (r *QuestionRepository) ListSets(ctx context.Context, ownerID string, limit int) ([]model.GeneratedQuestionSet, error) {
	sets := []model.GeneratedQuestionSet{}
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sets).Error
	return sets, err
}

// UpsertAttempt 首次作答插入，重复作答覆盖答案并累加次数
func (r *QuestionRepository) UpsertAttempt(ctx context.Context, attempt *model.QuestionAttempt) (*model.QuestionAttempt, error) {
	attempt.AttemptCount = 1
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "question_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_answer":   attempt.UserAnswer,
			"is_correct":    attempt.IsCorrect,
			"attempt_count": gorm.Expr("question_attempts.attempt_count + 1"),
			"updated_at":    time.Now().UTC(),
		}),
	}).Create(attempt).Error
	if err != nil {
		return nil, err
	}

	var stored model.QuestionAttempt
	err = r.DB.WithContext(ctx).
		Where("owner_id = ? AND question_id = ?", attempt.OwnerID, attempt.QuestionID).
		First(&stored).Error
	if err != nil {
		return nil, translateError(err, "question attempt")
	}
	return &stored, nil
}

func (r *QuestionRepository) CountIncorrectSince(ctx context.Context, ownerID string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.QuestionAttempt{}).
		Where("owner_id = ? AND is_correct = ? AND updated_at >= ?", ownerID, false, since.UTC()).
		Count(&count).Error
	return count, err
}
