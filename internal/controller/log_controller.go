package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/service"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
)

type LogController struct {
	LogService *service.LogService
}

func NewLogController(logService *service.LogService) *LogController {
	return &LogController{LogService: logService}
}

func badInput(err error) bool {
	return errors.Is(err, util.ErrInvalidDate) ||
		errors.Is(err, util.ErrInvalidMonth) ||
		errors.Is(err, util.ErrNotWeekStart) ||
		errors.Is(err, util.ErrFutureDate)
}

// @Summary List players
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /users [get]
func (c *LogController) GetUsers(ctx *gin.Context) {
	users, err := c.LogService.Users()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary Get the week snapshot
// @Description Seven days per player with derived pages-read, day status, lift-day count and the weekly run log
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param start query string true "Monday date key (YYYY-MM-DD)"
// @Success 200 {object} util.Response
// @Router /week [get]
func (c *LogController) GetWeek(ctx *gin.Context) {
	start := ctx.Query("start")
	if start == "" {
		util.BadRequest(ctx, "start is required")
		return
	}

	data, err := c.LogService.WeekData(start)
	if err != nil {
		if badInput(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// @Summary Save one day's log
// @Description Upserts a daily log, last-write-wins on (user, date)
// @Tags logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param log body service.DailyLogInput true "Daily log"
// @Success 200 {object} util.Response
// @Router /logs/daily [put]
func (c *LogController) SaveDailyLog(ctx *gin.Context) {
	var input service.DailyLogInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.LogService.SaveDailyLog(ctx.Request.Context(), input)
	if err != nil {
		if badInput(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, log)
}

// @Summary Save the weekly run flag
// @Description Upserts the 3-mile flag; any date in the week is normalized to its Monday
// @Tags logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param log body service.WeeklyLogInput true "Weekly log"
// @Success 200 {object} util.Response
// @Router /logs/weekly [put]
func (c *LogController) SaveWeeklyLog(ctx *gin.Context) {
	var input service.WeeklyLogInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.LogService.SaveWeeklyLog(ctx.Request.Context(), input)
	if err != nil {
		if badInput(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, log)
}

// @Summary Get a month of goal history
// @Description Tri-state (hit / missed / no data) per day for one player's month
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param user query int true "User id"
// @Param month query string true "Month key (YYYY-MM)"
// @Success 200 {object} util.Response
// @Router /calendar [get]
func (c *LogController) GetCalendar(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("user"))
	if userID == 0 {
		util.BadRequest(ctx, "user is required")
		return
	}
	month := ctx.Query("month")
	if month == "" {
		util.BadRequest(ctx, "month is required")
		return
	}

	views, err := c.LogService.MonthCalendar(userID, month)
	if err != nil {
		if badInput(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary List journal entries
// @Description One player's "today I learned" notes, newest first
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param user query int true "User id"
// @Success 200 {object} util.Response
// @Router /journal [get]
func (c *LogController) GetJournal(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("user"))
	if userID == 0 {
		util.BadRequest(ctx, "user is required")
		return
	}

	entries, err := c.LogService.Journal(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
