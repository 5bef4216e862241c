package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"
	"ufsbd-cms-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		httpx.WriteServiceError(c, err, "Inscription impossible, veuillez réessayer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Compte créé avec succès", "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Connexion impossible, veuillez réessayer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}
