package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type WorkHandler struct {
	workUseCase *workUC.UseCase
}

func NewWorkHandler(uc *workUC.UseCase) *WorkHandler {
	return &WorkHandler{workUseCase: uc}
}

func (h *WorkHandler) Create(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	w, err := h.workUseCase.Create(c.Request.Context(), workUC.CreateInput{
		OwnerID:          ownerID,
		Company:          req.Company,
		Position:         req.Position,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Current:          req.Current,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Achievements:     req.Achievements,
		Skills:           req.Skills,
		EmploymentType:   req.EmploymentType,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "work experience created successfully", gin.H{"workExperience": w})
}

func (h *WorkHandler) List(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	entries, err := h.workUseCase.List(c.Request.Context(), workUC.ListInput{
		OwnerID: ownerID,
		Sort:    c.Query("sort"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "work experiences retrieved successfully", gin.H{
		"workExperiences": entries,
		"count":           len(entries),
	})
}

func (h *WorkHandler) Get(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience id", err))
		return
	}

	w, err := h.workUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "work experience retrieved successfully", gin.H{"workExperience": w})
}

func (h *WorkHandler) Update(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience id", err))
		return
	}

	var req updateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	w, err := h.workUseCase.Update(c.Request.Context(), workUC.UpdateInput{
		ID:               id,
		OwnerID:          ownerID,
		Company:          req.Company,
		Position:         req.Position,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Current:          req.Current,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Achievements:     req.Achievements,
		Skills:           req.Skills,
		EmploymentType:   req.EmploymentType,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "work experience updated successfully", gin.H{"workExperience": w})
}

func (h *WorkHandler) Delete(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience id", err))
		return
	}

	if err := h.workUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "work experience deleted successfully", nil)
}
