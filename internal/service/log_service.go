package service

import (
	"context"
	"time"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/repository"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/streak"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
)

// LogService assembles the week and calendar views and writes log upserts.
// All derived values (pages read, day status, lift-day counts) are computed on
// read from the raw sparse series.
type LogService struct {
	DailyLogRepo  *repository.DailyLogRepository
	WeeklyLogRepo *repository.WeeklyLogRepository
	UserRepo      *repository.UserRepository
	Achievement   *AchievementService

	// now is swappable so week/calendar future-day classification is testable.
	now func() time.Time
}

func NewLogService(
	dailyLogRepo *repository.DailyLogRepository,
	weeklyLogRepo *repository.WeeklyLogRepository,
	userRepo *repository.UserRepository,
	achievement *AchievementService,
) *LogService {
	return &LogService{
		DailyLogRepo:  dailyLogRepo,
		WeeklyLogRepo: weeklyLogRepo,
		UserRepo:      userRepo,
		Achievement:   achievement,
		now:           time.Now,
	}
}

// DayView is one rendered calendar day: the raw log plus its derived values.
type DayView struct {
	Date      string           `json:"date"`
	Log       *model.DailyLog  `json:"log,omitempty"`
	PagesRead *int             `json:"pagesRead,omitempty"`
	Status    streak.DayStatus `json:"status"`
}

// PlayerWeek is one user's slice of the week view.
type PlayerWeek struct {
	User        model.User       `json:"user"`
	Days        []DayView        `json:"days"`
	LiftDays    int              `json:"liftDays"`
	LiftGoalMet bool             `json:"liftGoalMet"`
	WeeklyLog   *model.WeeklyLog `json:"weeklyLog,omitempty"`
}

// WeekData is the full week snapshot for every player.
type WeekData struct {
	WeekStart string       `json:"weekStart"`
	Players   []PlayerWeek `json:"players"`
}

// JournalEntry is one day's free-text note.
type JournalEntry struct {
	Date    string `json:"date"`
	Learned string `json:"learned"`
}

// Users lists the players.
func (s *LogService) Users() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// WeekData builds the week snapshot: per player, the seven days with derived
// pages-read and tri-state status, the lift-day count, and the weekly run log.
// The daily fetch extends one day before Monday so the week's first page delta
// resolves across the week boundary.
func (s *LogService) WeekData(weekStartKey string) (*WeekData, error) {
	normalized, err := util.WeekStartKey(weekStartKey)
	if err != nil {
		return nil, err
	}
	if normalized != weekStartKey {
		return nil, util.ErrNotWeekStart
	}

	weekStart, err := util.ParseDateKey(weekStartKey)
	if err != nil {
		return nil, err
	}
	days := util.WeekDays(weekStart)
	endKey := util.FormatDateKey(days[6])
	lookbackKey, err := util.DayBefore(weekStartKey)
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}
	weeklyLogs, err := s.WeeklyLogRepo.FindByWeek(weekStartKey)
	if err != nil {
		return nil, err
	}
	weeklyByUser := make(map[uint]model.WeeklyLog, len(weeklyLogs))
	for _, l := range weeklyLogs {
		weeklyByUser[l.UserID] = l
	}

	// One query covers both players; the range includes the lookback day.
	dailyLogs, err := s.DailyLogRepo.FindByRange(lookbackKey, endKey)
	if err != nil {
		return nil, err
	}
	logsByUserDate := make(map[uint]map[string]model.DailyLog, len(users))
	for _, l := range dailyLogs {
		if logsByUserDate[l.UserID] == nil {
			logsByUserDate[l.UserID] = make(map[string]model.DailyLog)
		}
		logsByUserDate[l.UserID][l.Date] = l
	}

	data := &WeekData{WeekStart: weekStartKey, Players: make([]PlayerWeek, 0, len(users))}
	for _, user := range users {
		logsByDate := logsByUserDate[user.ID]

		player := PlayerWeek{User: user, Days: make([]DayView, 0, len(days))}
		for _, day := range days {
			key := util.FormatDateKey(day)
			player.Days = append(player.Days, s.dayView(key, logsByDate))

			if l, ok := logsByDate[key]; ok && l.Lifted != nil && *l.Lifted {
				player.LiftDays++
			}
		}
		player.LiftGoalMet = streak.LiftGoalMet(player.LiftDays)
		if weekly, ok := weeklyByUser[user.ID]; ok {
			w := weekly
			player.WeeklyLog = &w
		}
		data.Players = append(data.Players, player)
	}

	return data, nil
}

// MonthCalendar renders one user's month of tri-state day results. The fetch
// extends one lookback day before the month so the first delta resolves.
func (s *LogService) MonthCalendar(userID uint, monthKey string) ([]DayView, error) {
	first, last, err := util.MonthRange(monthKey)
	if err != nil {
		return nil, err
	}
	startKey := util.FormatDateKey(first)
	endKey := util.FormatDateKey(last)
	lookbackKey, err := util.DayBefore(startKey)
	if err != nil {
		return nil, err
	}

	logs, err := s.DailyLogRepo.FindByUserAndRange(userID, lookbackKey, endKey)
	if err != nil {
		return nil, err
	}
	logsByDate := make(map[string]model.DailyLog, len(logs))
	for _, l := range logs {
		logsByDate[l.Date] = l
	}

	var views []DayView
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		views = append(views, s.dayView(util.FormatDateKey(day), logsByDate))
	}
	return views, nil
}

// dayView derives one day's pages-read and status. The previous page for the
// delta comes from the previous calendar day's record, which is how the
// calendar views resolve deltas; the reading streak walk instead uses the
// previous present record and lives in the streak package.
func (s *LogService) dayView(key string, logsByDate map[string]model.DailyLog) DayView {
	view := DayView{Date: key, Status: streak.DayNoData}

	log, ok := logsByDate[key]
	if ok {
		l := log
		view.Log = &l
	}
	if util.IsFutureDay(key, s.now()) {
		return view
	}
	if !ok {
		return view
	}

	var prevPage *int
	if prevKey, err := util.DayBefore(key); err == nil {
		if prev, ok := logsByDate[prevKey]; ok {
			prevPage = prev.CurrentPage
		}
	}
	view.PagesRead = streak.ComputePagesRead(log.CurrentPage, prevPage)

	dayLog := dayLogOf(log)
	view.Status = streak.EvaluateDay(&dayLog, view.PagesRead)
	return view
}

// DailyLogInput is one daily upsert. Nil fields are stored as "not logged".
type DailyLogInput struct {
	UserID      uint    `json:"userId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Steps       *int    `json:"steps"`
	CurrentPage *int    `json:"currentPage"`
	Stretched   *bool   `json:"stretched"`
	Lifted      *bool   `json:"lifted"`
	Learned     *string `json:"learned"`
}

// SaveDailyLog upserts one day's log, last-write-wins on (user, date).
func (s *LogService) SaveDailyLog(ctx context.Context, input DailyLogInput) (*model.DailyLog, error) {
	if _, err := util.ParseDateKey(input.Date); err != nil {
		return nil, err
	}
	if util.IsFutureDay(input.Date, s.now()) {
		return nil, util.ErrFutureDate
	}

	log := &model.DailyLog{
		UserID:      input.UserID,
		Date:        input.Date,
		Steps:       input.Steps,
		CurrentPage: input.CurrentPage,
		Stretched:   input.Stretched,
		Lifted:      input.Lifted,
		Learned:     input.Learned,
	}
	if err := s.DailyLogRepo.Upsert(log); err != nil {
		return nil, err
	}
	s.Achievement.InvalidateCache(ctx, input.UserID)
	return log, nil
}

// WeeklyLogInput is one weekly upsert. Any date inside the week is accepted
// and normalized to its Monday key.
type WeeklyLogInput struct {
	UserID        uint   `json:"userId" binding:"required"`
	WeekStartDate string `json:"weekStartDate" binding:"required"`
	Did3Mile      bool   `json:"did3Mile"`
}

// SaveWeeklyLog upserts the week's run flag, last-write-wins on (user, week).
func (s *LogService) SaveWeeklyLog(ctx context.Context, input WeeklyLogInput) (*model.WeeklyLog, error) {
	weekKey, err := util.WeekStartKey(input.WeekStartDate)
	if err != nil {
		return nil, err
	}

	log := &model.WeeklyLog{
		UserID:        input.UserID,
		WeekStartDate: weekKey,
		Did3Mile:      input.Did3Mile,
	}
	if err := s.WeeklyLogRepo.Upsert(log); err != nil {
		return nil, err
	}
	s.Achievement.InvalidateCache(ctx, input.UserID)
	return log, nil
}

// Journal lists a user's notes, newest first.
func (s *LogService) Journal(userID uint) ([]JournalEntry, error) {
	logs, err := s.DailyLogRepo.FindJournal(userID)
	if err != nil {
		return nil, err
	}
	entries := make([]JournalEntry, 0, len(logs))
	for _, l := range logs {
		if l.Learned == nil {
			continue
		}
		entries = append(entries, JournalEntry{Date: l.Date, Learned: *l.Learned})
	}
	return entries, nil
}
