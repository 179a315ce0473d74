package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/config"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.DailyLog{},
		&model.WeeklyLog{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// The app tracks a fixed pair of players. Seed them once so the
	// frontend always has both columns to render.
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"Thomas", "Nico"} {
			db.Create(&model.User{Name: name})
		}
		log.Println("Seeded default players")
	}

	return db, nil
}
