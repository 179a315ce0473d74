package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/repository"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/streak"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
	"github.com/ibrahimt2325-tech/fitness-tracker/pkg/logger"
)

const achievementCacheTTL = 5 * time.Minute

// AchievementService turns a user's full raw log history into streaks and
// medals. Derived values are never stored; the summary is recomputed from raw
// records on every read and only short-cached in redis.
type AchievementService struct {
	DailyLogRepo  *repository.DailyLogRepository
	WeeklyLogRepo *repository.WeeklyLogRepository
	UserRepo      *repository.UserRepository
	Redis         *redis.Client // nil disables caching
}

func NewAchievementService(
	dailyLogRepo *repository.DailyLogRepository,
	weeklyLogRepo *repository.WeeklyLogRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *AchievementService {
	return &AchievementService{
		DailyLogRepo:  dailyLogRepo,
		WeeklyLogRepo: weeklyLogRepo,
		UserRepo:      userRepo,
		Redis:         rdb,
	}
}

func achievementCacheKey(userID uint) string {
	return fmt.Sprintf("achievements:%d", userID)
}

// GetUserAchievements computes the per-activity streak and medal summary from
// the user's complete history.
func (s *AchievementService) GetUserAchievements(ctx context.Context, userID uint) (*streak.Summary, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, achievementCacheKey(userID)).Result(); err == nil {
			var summary streak.Summary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	dailyLogs, err := s.DailyLogRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	weeklyLogs, err := s.WeeklyLogRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	dailyByDate := make(map[string]streak.DayLog, len(dailyLogs))
	for _, l := range dailyLogs {
		dailyByDate[l.Date] = dayLogOf(l)
	}

	weeklyByWeek := make(map[string]bool, len(weeklyLogs))
	for _, l := range weeklyLogs {
		weeklyByWeek[l.WeekStartDate] = l.Did3Mile
	}

	liftDaysByWeek, err := aggregateLiftDays(dailyLogs)
	if err != nil {
		return nil, err
	}

	summary := streak.Aggregate(dailyByDate, weeklyByWeek, liftDaysByWeek)

	if s.Redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.Redis.Set(ctx, achievementCacheKey(userID), payload, achievementCacheTTL).Err(); err != nil {
				logger.Log.Warn("achievement cache write failed", zap.Uint("userId", userID), zap.Error(err))
			}
		}
	}

	return &summary, nil
}

// InvalidateCache drops the cached summary after any log write for the user.
func (s *AchievementService) InvalidateCache(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, achievementCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("achievement cache invalidation failed", zap.Uint("userId", userID), zap.Error(err))
	}
}

// aggregateLiftDays buckets lifted days by the Monday key of their ISO week.
// Every week with any record is present, so a logged week with zero lifts is a
// real miss rather than a gap.
func aggregateLiftDays(dailyLogs []model.DailyLog) (map[string]int, error) {
	byWeek := make(map[string]int)
	for _, l := range dailyLogs {
		weekKey, err := util.WeekStartKey(l.Date)
		if err != nil {
			return nil, err
		}
		if _, ok := byWeek[weekKey]; !ok {
			byWeek[weekKey] = 0
		}
		if l.Lifted != nil && *l.Lifted {
			byWeek[weekKey]++
		}
	}
	return byWeek, nil
}

func dayLogOf(l model.DailyLog) streak.DayLog {
	return streak.DayLog{
		Steps:       l.Steps,
		CurrentPage: l.CurrentPage,
		Stretched:   l.Stretched,
		Lifted:      l.Lifted,
	}
}
