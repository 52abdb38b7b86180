package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// GetMotivation godoc
// @Summary 获取激励短句
// @Description 就绪度过低或较高时返回对应的固定短句，其余情况随机选择
// @Tags 激励
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.MotivationQuote}
// @Router /api/motivation [get]
func (c *MotivationController) GetMotivation(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	quote, err := c.MotivationService.Quote(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, quote)
}
