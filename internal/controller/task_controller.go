package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

// TaskController 处理备考任务相关的API请求
type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// CreateTaskRequest 定义任务创建请求模型，dueDate 支持 RFC3339 或 YYYY-MM-DD
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateTaskRequest 只更新传入的字段
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// ListTasksRequest 定义任务列表查询参数
// swagger:model ListTasksRequest
type ListTasksRequest struct {
	Status    string `form:"status"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := util.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask godoc
// @Summary 创建任务
// @Tags 任务管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateTaskRequest true "任务信息"
// @Success 201 {object} util.Response{data=model.Task} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dueDate, err := parseDueDate(&req.DueDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	task, err := c.TaskService.Create(ctx.Request.Context(), ownerID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		Priority:    model.TaskPriority(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, task)
}

// ListTasks godoc
// @Summary 获取任务列表
// @Description 支持按状态筛选、按截止日期或优先级排序和分页，同时返回整体完成情况
// @Tags 任务管理
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Pending / In Progress / Completed"
// @Param sortBy query string false "dueDate 或 priority" default(dueDate)
// @Param sortOrder query string false "asc 或 desc" default(asc)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response{data=model.TaskPage}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req ListTasksRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, err := c.TaskService.List(ctx.Request.Context(), ownerID, model.TaskQuery{
		Status:    model.TaskStatus(req.Status),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      util.ParseIntDefault(req.Page, 1),
		Limit:     util.ParseIntDefault(req.Limit, 10),
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, page)
}

// UpdateTask godoc
// @Summary 更新任务
// @Tags 任务管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "任务ID"
// @Param request body UpdateTaskRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.Task}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := model.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := c.TaskService.Update(ctx.Request.Context(), ownerID, ctx.Param("id"), patch)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, task)
}

// DeleteTask godoc
// @Summary 删除任务
// @Tags 任务管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	if err := c.TaskService.Delete(ctx.Request.Context(), ownerID, ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"id": ctx.Param("id")})
}

// CompleteTask godoc
// @Summary 标记任务完成
// @Description 标记完成并计入当日活跃
// @Tags 任务管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=model.Task}
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id}/complete [patch]
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	task, err := c.TaskService.MarkCompleted(ctx.Request.Context(), ownerID, ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, task)
}
