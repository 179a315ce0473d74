package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/service"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// @Summary Log in with the shared passphrase
// @Description Exchanges the shared passphrase for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Passphrase"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Passphrase)
	if err != nil {
		if errors.Is(err, util.ErrBadPassphrase) {
			util.Unauthorized(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
