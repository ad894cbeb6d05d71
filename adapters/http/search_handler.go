package http

import (
	"github.com/gin-gonic/gin"

	searchUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/search"
)

type SearchHandler struct {
	searchUseCase *searchUC.UseCase
}

func NewSearchHandler(uc *searchUC.UseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: uc}
}

func (h *SearchHandler) Search(c *gin.Context) {
	ownerID, err := GetOwnerIDFromGinContext(c)
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.searchUseCase.Execute(c.Request.Context(), searchUC.Input{
		OwnerID: ownerID,
		Query:   c.Query("q"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "search completed successfully", gin.H{
		"query":   out.Query,
		"results": out.Results,
		"summary": out.Summary,
	})
}
