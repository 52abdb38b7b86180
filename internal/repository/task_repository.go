package repository

import (
	"context"
	"interview_readiness_backend/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const priorityRankExpr = "CASE priority WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 1 ELSE 2 END"

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.DB.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, translateError(err, "task")
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.DB.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "task")
	}
	return nil
}

// List 分页查询，q 需已规范化
func (r *TaskRepository) List(ctx context.Context, ownerID string, q model.TaskQuery) ([]model.Task, int64, error) {
	filtered := func() *gorm.DB {
		db := r.DB.WithContext(ctx).Model(&model.Task{}).Where("owner_id = ?", ownerID)
		if q.Status != "" {
			db = db.Where("status = ?", q.Status)
		}
		return db
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		dir = "ASC"
	}

	query := filtered()
	switch q.SortBy {
	case "dueDate":
		query = query.Order("due_date " + dir)
	case "priority":
		query = query.Order(priorityRankExpr + " " + dir)
	}
	query = query.Order("created_at DESC")

	tasks := []model.Task{}
	err := query.
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&tasks).Error
	return tasks, total, err
}

// Metrics 统计全部任务，不受筛选条件影响
func (r *TaskRepository) Metrics(ctx context.Context, ownerID string, now time.Time) (total, completed, overdue int64, err error) {
	db := r.DB.WithContext(ctx).Model(&model.Task{}).Session(&gorm.Session{})

	if err = db.Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return
	}
	if err = db.
		Where("owner_id = ? AND status = ?", ownerID, model.TaskCompleted).
		Count(&completed).Error; err != nil {
		return
	}
	err = db.
		Where("owner_id = ? AND status <> ? AND due_date IS NOT NULL AND due_date < ?", ownerID, model.TaskCompleted, now.UTC()).
		Count(&overdue).Error
	return
}
