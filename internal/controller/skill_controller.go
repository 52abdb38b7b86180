package controller

import (
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SkillController 技能自评
type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

// CreateSkillRequest 新增技能
// swagger:model CreateSkillRequest
type CreateSkillRequest struct {
	SkillName       string `json:"skillName" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Level           string `json:"level" binding:"required"`
	ConfidenceScore int    `json:"confidenceScore" binding:"required"`
}

// UpdateSkillRequest 只更新传入的字段
// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	SkillName       *string `json:"skillName"`
	Category        *string `json:"category"`
	Level           *string `json:"level"`
	ConfidenceScore *int    `json:"confidenceScore"`
}

// CreateSkill godoc
// @Summary 新增技能
// @Description 新增技能并重新计算就绪度
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateSkillRequest true "技能信息"
// @Success 201 {object} util.Response{data=model.SkillWithReadiness}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "技能已存在"
// @Router /api/skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SkillService.Create(ctx.Request.Context(), ownerID, service.CreateSkillInput{
		SkillName:       req.SkillName,
		Category:        model.SkillCategory(req.Category),
		Level:           model.SkillLevel(req.Level),
		ConfidenceScore: req.ConfidenceScore,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// ListSkills godoc
// @Summary 获取技能列表
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SkillList}
// @Router /api/skills [get]
func (c *SkillController) ListSkills(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	result, err := c.SkillService.List(ctx.Request.Context(), ownerID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// UpdateSkill godoc
// @Summary 更新技能
// @Description 置信度变化会写入历史
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "技能ID"
// @Param request body UpdateSkillRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.SkillWithReadiness}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/skills/{id} [put]
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	var req UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := service.SkillPatch{
		SkillName:       req.SkillName,
		ConfidenceScore: req.ConfidenceScore,
	}
	if req.Category != nil {
		category := model.SkillCategory(*req.Category)
		patch.Category = &category
	}
	if req.Level != nil {
		level := model.SkillLevel(*req.Level)
		patch.Level = &level
	}

	result, err := c.SkillService.Update(ctx.Request.Context(), ownerID, ctx.Param("id"), patch)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// DeleteSkill godoc
// @Summary 删除技能
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "技能ID"
// @Success 200 {object} util.Response{data=model.ReadinessScore}
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/skills/{id} [delete]
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	ownerID, ok := middleware.OwnerID(ctx)
	if !ok {
		return
	}

	readiness, err := c.SkillService.Delete(ctx.Request.Context(), ownerID, ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"readiness": readiness})
}
