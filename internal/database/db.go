package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightflow/internal/database/models"
)

// NewConnection opens the postgres connection pool. Returns an error instead
// of exiting so callers can run in degraded read-only mode without a database.
func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Company{},
		&models.Carrier{},
		&models.Driver{},
		&models.Quote{},
		&models.Dispatch{},
		&models.RateCard{},
		&models.Accessorial{},
		&models.AILog{},
	}
	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", table, err)
		}
	}
	log.Println("Database migration complete")
	return nil
}

func strPtr(s string) *string { return &s }

// SeedAccessorials inserts the standard drayage accessorial catalog. Existing
// codes are left untouched, so operator edits survive restarts.
func SeedAccessorials(db *gorm.DB) error {
	seed := []models.Accessorial{
		{Code: "CHAS", Name: "Chassis Fee", Description: strPtr("Daily chassis usage"), DefaultRate: "45.00", RateType: "per_day", AppliesToTypes: models.StringArray{"drayage"}},
		{Code: "DET", Name: "Detention", Description: strPtr("Driver wait time beyond free hours"), DefaultRate: "75.00", RateType: "per_hour", AppliesToTypes: models.StringArray{"drayage", "ftl"}},
		{Code: "DEM", Name: "Demurrage", Description: strPtr("Container held at port past last free day"), DefaultRate: "150.00", RateType: "per_day", AppliesToTypes: models.StringArray{"drayage"}},
		{Code: "STOR", Name: "Storage", Description: strPtr("Yard storage"), DefaultRate: "65.00", RateType: "per_day", AppliesToTypes: models.StringArray{"drayage", "ftl"}},
		{Code: "PREPULL", Name: "Pre-Pull", Description: strPtr("Container pulled before delivery date"), DefaultRate: "125.00", RateType: "flat", AppliesToTypes: models.StringArray{"drayage"}},
		{Code: "FLIP", Name: "Chassis Flip", Description: strPtr("Container moved between chassis"), DefaultRate: "95.00", RateType: "flat", AppliesToTypes: models.StringArray{"drayage"}},
		{Code: "OW", Name: "Overweight", Description: strPtr("Overweight container surcharge"), DefaultRate: "150.00", RateType: "flat", AppliesToTypes: models.StringArray{"drayage"}},
		{Code: "HAZ", Name: "Hazmat", Description: strPtr("Hazardous materials handling"), DefaultRate: "200.00", RateType: "flat", AppliesToTypes: models.StringArray{"drayage", "ftl"}},
		{Code: "DRYRUN", Name: "Dry Run", Description: strPtr("Truck dispatched but load not available"), DefaultRate: "175.00", RateType: "flat", AppliesToTypes: models.StringArray{"drayage", "ftl"}},
	}
	for _, acc := range seed {
		if err := db.Where(models.Accessorial{Code: acc.Code}).FirstOrCreate(&acc).Error; err != nil {
			return fmt.Errorf("failed to seed accessorial %s: %w", acc.Code, err)
		}
	}
	return nil
}
