package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/project"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type ProjectHandler struct {
	projectUseCase *projectUC.UseCase
}

func NewProjectHandler(uc *projectUC.UseCase) *ProjectHandler {
	return &ProjectHandler{projectUseCase: uc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.projectUseCase.Create(c.Request.Context(), projectUC.CreateInput{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Skills:       req.Skills,
		Technologies: req.Technologies,
		Links:        req.Links,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Featured:     req.Featured,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "project created successfully", gin.H{"project": p})
}

func (h *ProjectHandler) List(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	input := projectUC.ListInput{OwnerID: ownerID}
	if skill := c.Query("skill"); skill != "" {
		input.Skill = &skill
	}
	if status := c.Query("status"); status != "" {
		input.Status = &status
	}
	if featured := c.Query("featured"); featured != "" {
		f := featured == "true"
		input.Featured = &f
	}
	input.Limit, _ = strconv.Atoi(c.Query("limit"))
	input.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	out, err := h.projectUseCase.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "projects retrieved successfully", gin.H{
		"projects":   out.Projects,
		"count":      len(out.Projects),
		"pagination": out.Pagination,
	})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project id", err))
		return
	}

	p, err := h.projectUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "project retrieved successfully", gin.H{"project": p})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project id", err))
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.projectUseCase.Update(c.Request.Context(), projectUC.UpdateInput{
		ID:           id,
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Skills:       req.Skills,
		Technologies: req.Technologies,
		Links:        req.Links,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Featured:     req.Featured,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "project updated successfully", gin.H{"project": p})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project id", err))
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "project deleted successfully", nil)
}
