package http

import (
	"github.com/gin-gonic/gin"

	authUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/auth"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
}

func NewAuthHandler(loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{loginUseCase: loginUC}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	out, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "login successful", gin.H{"accessToken": out.AccessToken})
}
