package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// APIKey represents the api_keys table. A revoked key is soft-deleted and
// kept so that a correctly signed key cannot register itself again.
type APIKey struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Key        string         `gorm:"unique;not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	KeyPreview string         `json:"key_preview"`
	RateLimit  int            `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time      `json:"created_at"`
	LastUsed   *time.Time     `json:"last_used"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// APIUsage represents the api_usage table. One row per key per day.
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	TotalShifts    int    `gorm:"default:0" json:"total_shifts"`
	TotalEmployees int    `gorm:"default:0" json:"total_employees"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Schedule is a saved week, owned by the API key that created it.
type Schedule struct {
	ID         string                 `gorm:"primaryKey;size:36" json:"id"`
	KeyID      uint                   `gorm:"index;not null" json:"-"`
	Title      string                 `gorm:"not null" json:"title"`
	WeekStart  string                 `gorm:"size:10;not null" json:"week_start"`
	Notes      string                 `json:"notes"`
	ClosedDays models.ClosedDays      `gorm:"serializer:json" json:"closed_days"`
	Shifts     []models.ShiftInstance `gorm:"serializer:json" json:"shifts"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Options selects the backing store. A non-empty DatabaseURL means Postgres,
// otherwise SQLite at DataPath.
type Options struct {
	DatabaseURL string
	DataPath    string
	Debug       bool
}

// InitDB initializes the database connection and migrates the schema
func InitDB(opts Options) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if opts.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	if opts.DatabaseURL != "" {
		gormCfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  opts.DatabaseURL,
			PreferSimpleProtocol: true,
		}), gormCfg)
	} else {
		dbPath := opts.DataPath
		if dbPath == "" {
			dbPath = "scheduler.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &Schedule{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
