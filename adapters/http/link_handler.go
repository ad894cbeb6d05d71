package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	linkUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/link"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type LinkHandler struct {
	linkUseCase *linkUC.UseCase
}

func NewLinkHandler(uc *linkUC.UseCase) *LinkHandler {
	return &LinkHandler{linkUseCase: uc}
}

func (h *LinkHandler) Create(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	l, err := h.linkUseCase.Create(c.Request.Context(), linkUC.CreateInput{
		OwnerID:     ownerID,
		Platform:    req.Platform,
		URL:         req.URL,
		Label:       req.Label,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Order:       req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "link created successfully", gin.H{"link": l})
}

func (h *LinkHandler) List(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	input := linkUC.ListInput{OwnerID: ownerID}
	if platform := c.Query("platform"); platform != "" {
		input.Platform = &platform
	}
	if isPublic := c.Query("isPublic"); isPublic != "" {
		v := isPublic == "true"
		input.IsPublic = &v
	}

	links, err := h.linkUseCase.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "links retrieved successfully", gin.H{
		"links": links,
		"count": len(links),
	})
}

func (h *LinkHandler) Get(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid link id", err))
		return
	}

	l, err := h.linkUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "link retrieved successfully", gin.H{"link": l})
}

func (h *LinkHandler) Update(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid link id", err))
		return
	}

	var req updateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	l, err := h.linkUseCase.Update(c.Request.Context(), linkUC.UpdateInput{
		ID:          id,
		OwnerID:     ownerID,
		Platform:    req.Platform,
		URL:         req.URL,
		Label:       req.Label,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Order:       req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "link updated successfully", gin.H{"link": l})
}

func (h *LinkHandler) Delete(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid link id", err))
		return
	}

	if err := h.linkUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "link deleted successfully", nil)
}
