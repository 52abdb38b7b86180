package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	StreakService *service.StreakService
}

func NewStreakController(streakService *service.StreakService) *StreakController {
	return &StreakController{StreakService: streakService}
}

// GetStreak godoc
// @Summary 当前连续打卡
// @Tags 连续打卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserStreak}
// @Router /api/streak [get]
func (c *StreakController) GetStreak(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	streak, err := c.StreakService.GetStreak(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, streak)
}

// GetHistory godoc
// @Summary 最近的活动记录
// @Tags 连续打卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserActivity}
// @Router /api/streak/history [get]
func (c *StreakController) GetHistory(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	activities, err := c.StreakService.History(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}

// GetConsistency godoc
// @Summary 近 30 天活跃度
// @Tags 连续打卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ConsistencyScore}
// @Router /api/streak/consistency [get]
func (c *StreakController) GetConsistency(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	score, err := c.StreakService.ActivityConsistency(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, score)
}
