package database

import (
	"fmt"
	"log"

	"adultease/config"
	"adultease/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection and migrates the finance tables.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.Category{},
		&models.LedgerRow{},
		&models.BudgetEntry{},
	); err != nil {
		return err
	}

	// The Wage category is seeded lazily per user on first category fetch,
	// not here: there is no global category table to pre-fill.

	log.Println("database initialized")
	return nil
}

// GetDB returns the database connection.
func GetDB() *gorm.DB {
	return DB
}
