// Seeds a few weeks of demo logs for both players.
//
// Intended for local development against an empty database, so the week
// view, calendar and achievements pages have something to show.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/config"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/repository"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
	"github.com/ibrahimt2325-tech/fitness-tracker/pkg/database"
	"github.com/ibrahimt2325-tech/fitness-tracker/pkg/logger"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	dailyRepo := repository.NewDailyLogRepository(db)
	weeklyRepo := repository.NewWeeklyLogRepository(db)

	users, err := userRepo.FindAll()
	if err != nil {
		log.Fatalf("failed to list users: %v", err)
	}

	today := time.Now()
	start := today.AddDate(0, 0, -28)

	log.Println("Seeding 4 weeks of demo logs...")

	for i, user := range users {
		// Book page is cumulative, so keep a running counter per user.
		page := 40 + 60*i
		for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
			// Leave an occasional hole so the calendar shows real gaps.
			if day.Day()%9 == 0 {
				continue
			}

			steps := 5200 + (day.Day()*137+i*911)%4000
			page += 6 + (day.Day()+i)%10

			dailyLog := &model.DailyLog{
				UserID:      user.ID,
				Date:        util.FormatDateKey(day),
				Steps:       intp(steps),
				CurrentPage: intp(page),
				Stretched:   boolp(day.Day()%4 != 0),
				Lifted:      boolp(day.Day()%3 != 0),
			}
			if err := dailyRepo.Upsert(dailyLog); err != nil {
				log.Fatalf("daily upsert failed: %v", err)
			}
		}

		for week := util.WeekStart(start); !week.After(today); week = week.AddDate(0, 0, 7) {
			weeklyLog := &model.WeeklyLog{
				UserID:        user.ID,
				WeekStartDate: util.FormatDateKey(week),
				Did3Mile:      week.Day()%5 != 0,
			}
			if err := weeklyRepo.Upsert(weeklyLog); err != nil {
				log.Fatalf("weekly upsert failed: %v", err)
			}
		}
	}

	log.Println("Done!")
}
