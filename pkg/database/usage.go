package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordUsage adds one request to the key's row for date (YYYY-MM-DD) with a
// single upsert, supported by both Postgres and SQLite.
func RecordUsage(db *gorm.DB, keyID uint, date string, shiftCount, employeeCount int) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"total_shifts":    gorm.Expr("total_shifts + ?", shiftCount),
			"total_employees": gorm.Expr("total_employees + ?", employeeCount),
		}),
	}).Create(&APIUsage{
		KeyID:          keyID,
		Date:           date,
		RequestCount:   1,
		TotalShifts:    shiftCount,
		TotalEmployees: employeeCount,
	}).Error
}

// UsageHistory returns the key's most recent days, newest first.
func UsageHistory(db *gorm.DB, keyID uint, days int) ([]APIUsage, error) {
	var usage []APIUsage
	err := db.Where("key_id = ?", keyID).Order("date desc").Limit(days).Find(&usage).Error
	return usage, err
}

// RequestsOn returns the request count recorded for the key on date.
func RequestsOn(db *gorm.DB, keyID uint, date string) (int, error) {
	var usage APIUsage
	err := db.Where("key_id = ? AND date = ?", keyID, date).Limit(1).Find(&usage).Error
	return usage.RequestCount, err
}
