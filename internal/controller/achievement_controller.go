package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/service"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary Get a player's achievements
// @Description Current streak, earned medals and highest medal per activity, recomputed from the full history
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Param user query int true "User id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("user"))
	if userID == 0 {
		util.BadRequest(ctx, "user is required")
		return
	}

	summary, err := c.AchievementService.GetUserAchievements(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
