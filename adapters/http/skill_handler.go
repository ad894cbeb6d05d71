package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/skill"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type SkillHandler struct {
	skillUseCase *skillUC.UseCase
}

func NewSkillHandler(uc *skillUC.UseCase) *SkillHandler {
	return &SkillHandler{skillUseCase: uc}
}

func (h *SkillHandler) Create(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	s, err := h.skillUseCase.Create(c.Request.Context(), skillUC.CreateInput{
		OwnerID:           ownerID,
		Name:              req.Name,
		Category:          req.Category,
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		Description:       req.Description,
		IsActive:          req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "skill created successfully", gin.H{"skill": s})
}

func (h *SkillHandler) List(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	input := skillUC.ListInput{
		OwnerID: ownerID,
		Sort:    c.Query("sort"),
	}
	if category := c.Query("category"); category != "" {
		input.Category = &category
	}

	skills, err := h.skillUseCase.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "skills retrieved successfully", gin.H{
		"skills": skills,
		"count":  len(skills),
	})
}

func (h *SkillHandler) Top(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	skills, err := h.skillUseCase.Top(c.Request.Context(), skillUC.TopInput{
		OwnerID: ownerID,
		Limit:   limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "top skills retrieved successfully", gin.H{
		"skills": skills,
		"count":  len(skills),
	})
}

func (h *SkillHandler) Get(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	s, err := h.skillUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "skill retrieved successfully", gin.H{"skill": s})
}

func (h *SkillHandler) Update(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	s, err := h.skillUseCase.Update(c.Request.Context(), skillUC.UpdateInput{
		ID:                id,
		OwnerID:           ownerID,
		Name:              req.Name,
		Category:          req.Category,
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		Description:       req.Description,
		IsActive:          req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "skill updated successfully", gin.H{"skill": s})
}

func (h *SkillHandler) Delete(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	if err := h.skillUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "skill deleted successfully", nil)
}
