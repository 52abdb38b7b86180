package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SuggestionController 每日建议
type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// GetToday godoc
// @Summary 今日建议
// @Description 每个用户每天只生成一次，当天后续请求返回同一条建议
// @Tags 每日建议
// @Produce json
// @Security ApiKeyAuth
// @Param companyFocus query string false "目标公司"
// @Success 200 {object} util.Response{data=model.DailySuggestion}
// @Router /api/suggestions/today [get]
func (c *SuggestionController) GetToday(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	suggestion, err := c.SuggestionService.Today(ctx.Request.Context(), ownerID, ctx.Query("companyFocus"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, suggestion)
}
