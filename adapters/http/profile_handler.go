package http

import (
	"github.com/gin-gonic/gin"

	profileUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/profile"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.profileUseCase.Create(c.Request.Context(), profileUC.CreateInput{
		OwnerID:   ownerID,
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		Bio:       req.Bio,
		Location:  req.Location,
		Phone:     req.Phone,
		Website:   req.Website,
		Education: req.Education,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "profile created successfully", gin.H{"profile": p})
}

// Get returns the profile together with every owned collection, served
// from cache when fresh.
func (h *ProfileHandler) Get(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.profileUseCase.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "profile retrieved successfully", gin.H{
		"profile":  view.Profile,
		"skills":   view.Skills,
		"projects": view.Projects,
		"work":     view.Work,
		"links":    view.Links,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.profileUseCase.Update(c.Request.Context(), profileUC.UpdateInput{
		OwnerID:   ownerID,
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		Bio:       req.Bio,
		Location:  req.Location,
		Phone:     req.Phone,
		Website:   req.Website,
		Education: req.Education,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "profile updated successfully", gin.H{"profile": p})
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.profileUseCase.Delete(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "profile deleted successfully", nil)
}
