package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveSchedule inserts s, assigning an id when it has none.
func SaveSchedule(db *gorm.DB, s *Schedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return db.Create(s).Error
}

// ListSchedules returns the key's schedules, newest first. Shifts are not loaded.
func ListSchedules(db *gorm.DB, keyID uint) ([]Schedule, error) {
	var out []Schedule
	err := db.Omit("shifts").
		Where("key_id = ?", keyID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetSchedule loads one schedule owned by the key. It returns
// gorm.ErrRecordNotFound when the id is unknown or belongs to another key.
func GetSchedule(db *gorm.DB, keyID uint, id string) (*Schedule, error) {
	var s Schedule
	if err := db.Where("id = ? AND key_id = ?", id, keyID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
