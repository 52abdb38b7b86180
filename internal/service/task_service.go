package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"interview_readiness_backend/pkg/logger"
	"math"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

const (
	defaultTaskLimit = 10
	maxTaskLimit     = 100
)

type CreateTaskInput struct {
	Title       string             `validate:"required,max=255"`
	Description string             `validate:"max=5000"`
	Status      model.TaskStatus   `validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    model.TaskPriority `validate:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time
}

// TaskPatch 为 nil 的字段保持不变
type TaskPatch struct {
	Title       *string             `validate:"omitempty,min=1,max=255"`
	Description *string             `validate:"omitempty,max=5000"`
	Status      *model.TaskStatus   `validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    *model.TaskPriority `validate:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil && p.DueDate == nil
}

type TaskService struct {
	TaskRepo      *repository.TaskRepository
	StreakService *StreakService
	now           func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository, streakService *StreakService) *TaskService {
	return &TaskService{
		TaskRepo:      taskRepo,
		StreakService: streakService,
		now:           time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*model.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	task := &model.Task{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     utcPtr(in.DueDate),
	}
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	s.applyCompletion(task)

	if err := s.TaskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	s.decorate(task)
	return task, nil
}

// NormalizeTaskQuery 校验筛选与排序参数，分页参数越界时取边界值
func NormalizeTaskQuery(q model.TaskQuery) (model.TaskQuery, error) {
	if q.Status != "" && !q.Status.Valid() {
		return q, util.NewValidationError("Invalid status filter")
	}
	if q.SortBy == "" {
		q.SortBy = "dueDate"
	}
	if q.SortBy != "dueDate" && q.SortBy != "priority" {
		return q, util.NewValidationError("Invalid sortBy value. Use dueDate or priority")
	}
	if strings.EqualFold(q.SortOrder, "desc") {
		q.SortOrder = "desc"
	} else {
		q.SortOrder = "asc"
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultTaskLimit
	}
	q.Limit = util.Clamp(q.Limit, 1, maxTaskLimit)
	return q, nil
}

func (s *TaskService) List(ctx context.Context, ownerID string, q model.TaskQuery) (*model.TaskPage, error) {
	q, err := NormalizeTaskQuery(q)
	if err != nil {
		return nil, err
	}

	tasks, filtered, err := s.TaskRepo.List(ctx, ownerID, q)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		s.decorate(&tasks[i])
	}

	total, completed, overdue, err := s.TaskRepo.Metrics(ctx, ownerID, s.now())
	if err != nil {
		return nil, err
	}

	var pct float64
	if total > 0 {
		pct = util.Round2(float64(completed) / float64(total) * 100)
	}

	return &model.TaskPage{
		Tasks: tasks,
		Pagination: model.Pagination{
			Page:               q.Page,
			Limit:              q.Limit,
			TotalFilteredTasks: filtered,
			TotalPages:         int(math.Ceil(float64(filtered) / float64(q.Limit))),
		},
		Metrics: model.TaskMetrics{
			TotalTasks:          total,
			CompletedTasks:      completed,
			CompletedPercentage: pct,
			OverdueTasks:        overdue,
		},
	}, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, id string, patch TaskPatch) (*model.Task, error) {
	if patch.Empty() {
		return nil, util.NewValidationError("No valid fields provided for update")
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	task, err := s.TaskRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	prevStatus := task.Status

	if err := copier.CopyWithOption(task, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if patch.DueDate != nil {
		task.DueDate = utcPtr(patch.DueDate)
	}
	if patch.Status != nil && *patch.Status != prevStatus {
		s.applyCompletion(task)
	}

	if err := s.TaskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	s.decorate(task)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	return s.TaskRepo.Delete(ctx, ownerID, id)
}

// MarkCompleted 标记完成并记录一次 TaskComplete 活动
func (s *TaskService) MarkCompleted(ctx context.Context, ownerID, id string) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if task.Status != model.TaskCompleted {
		task.Status = model.TaskCompleted
		s.applyCompletion(task)
		if err := s.TaskRepo.Update(ctx, task); err != nil {
			return nil, err
		}
	}

	if s.StreakService != nil {
		if _, err := s.StreakService.RecordActivity(ctx, ownerID, model.ActivityTaskComplete, task.ID); err != nil {
			logger.Log.Warn("Failed to record task activity", zap.String("owner", ownerID), zap.Error(err))
		}
	}

	s.decorate(task)
	return task, nil
}

// applyCompletion completedAt 跟随状态设置或清空
func (s *TaskService) applyCompletion(task *model.Task) {
	if task.Status == model.TaskCompleted {
		now := s.now().UTC()
		task.CompletedAt = &now
		return
	}
	task.CompletedAt = nil
}

func (s *TaskService) decorate(task *model.Task) {
	task.IsOverdue = task.Status != model.TaskCompleted &&
		task.DueDate != nil &&
		task.DueDate.Before(s.now())
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
