package mockapi

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pilotapp/crm-console/internal/config"
)

// stockQuestions is the onboarding checklist the product ships with
var stockQuestions = []QuestionRecord{
	{ID: "q1", Question: "Does the cutsomer have iPads with iOS 16.6 or l."},
	{ID: "q2", Question: "Can the iPads download apps through the App Store?"},
	{ID: "q3", Question: "Does FDC have Raw Flight Data with a minimum of 3 months of historical"},
	{ID: "q4", Question: "Does the airline provide AFRs WITH Crew Codes PRIOR to flights being proce"},
	{ID: "q5", Question: "Does their Flight Data data frame documentation meet our require"},
	{ID: "q6", Question: "Has the customer set SOP Alert thresholds in the PilotApp (Fuel) template withi"},
	{ID: "q7", Question: "Has the customer been assisted in configuring the system in line with operational cons and existing Safety & Fuel initiatives?"},
	{ID: "q8", Question: "Has the customer selected relevent Metrics (KPI's & scores) in PilotApp?"},
	{ID: "q9", Question: "Ready for a Live Trial?"},
}

// OpenDatabase connects to the configured database, migrates the schema and
// seeds the stock checklist questions on first run
func OpenDatabase(cfg *config.MockAPIConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite", "":
		dialector = sqlite.Open(cfg.SQLite)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&CustomerRecord{},
		&ContactRecord{},
		&AFRDataRecord{},
		&ChecklistRecord{},
		&QuestionRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedQuestions(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&QuestionRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&stockQuestions).Error
}
