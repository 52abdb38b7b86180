package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestionController AI 出题与作答记录
type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// GenerateQuestionsRequest 出题请求，count 缺省为 5，超出范围时取边界值
// swagger:model GenerateQuestionsRequest
type GenerateQuestionsRequest struct {
	Skill      string `json:"skill" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Count      int    `json:"count"`
}

// AttemptRequest 作答记录，userAnswer 与 isCorrect 必须显式传入，userAnswer 可为空字符串
// swagger:model AttemptRequest
type AttemptRequest struct {
	QuestionID string  `json:"questionId"`
	UserAnswer *string `json:"userAnswer"`
	IsCorrect  *bool   `json:"isCorrect"`
}

// GenerateQuestions godoc
// @Summary AI 生成面试题
// @Description 提供商不可用或返回内容无法解析时返回占位题目，usedFallback 为 true
// @Tags AI练习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GenerateQuestionsRequest true "出题参数"
// @Success 200 {object} util.Response{data=service.GeneratedSetResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/ai/generate [post]
func (c *QuestionController) GenerateQuestions(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuestionService.GenerateAndStore(ctx.Request.Context(), ownerID, service.GenerateRequest{
		Skill:      req.Skill,
		Difficulty: model.Difficulty(req.Difficulty),
		Type:       model.QuestionType(req.Type),
		Count:      req.Count,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// RecordAttempt godoc
// @Summary 记录作答
// @Description 同一题目重复作答时覆盖答案并累加次数
// @Tags AI练习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AttemptRequest true "作答信息"
// @Success 200 {object} util.Response{data=model.QuestionAttempt}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/ai/attempt [post]
func (c *QuestionController) RecordAttempt(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuestionService.RecordAttempt(ctx.Request.Context(), ownerID, service.AttemptRequest{
		QuestionID: req.QuestionID,
		UserAnswer: req.UserAnswer,
		IsCorrect:  req.IsCorrect,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// GetHistory godoc
// @Summary 最近生成的题目
// @Tags AI练习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.GeneratedQuestionSet}
// @Router /api/ai/history [get]
func (c *QuestionController) GetHistory(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	sets, err := c.QuestionService.History(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, sets)
}
