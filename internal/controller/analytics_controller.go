package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AnalyticsController 表现分析
type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetSummary godoc
// @Summary 生成表现汇总
// @Description 重新计算提升率、薄弱技能、稳定度与停滞标记并覆盖保存
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.PerformanceSummary}
// @Router /api/analytics/summary [get]
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	summary, err := c.AnalyticsService.GenerateSummary(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// GetTrends godoc
// @Summary 置信度变化趋势
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "统计天数，1-365" default(30)
// @Success 200 {object} util.Response{data=model.TrendReport}
// @Router /api/analytics/trends [get]
func (c *AnalyticsController) GetTrends(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	days := util.ParseIntDefault(ctx.Query("days"), 30)
	report, err := c.AnalyticsService.TrendReport(ctx.Request.Context(), ownerID, days)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetWeakAreas godoc
// @Summary 薄弱环节
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.WeakAreas}
// @Router /api/analytics/weak-areas [get]
func (c *AnalyticsController) GetWeakAreas(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	areas, err := c.AnalyticsService.WeakAreas(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, areas)
}
