package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrKeyRevoked is returned for keys an admin has revoked.
var ErrKeyRevoked = errors.New("api key revoked")

// FindOrRegisterKey returns the record for a verified key, creating it with
// the given name and limit on first use. It also stamps LastUsed.
func FindOrRegisterKey(db *gorm.DB, key, name, preview string, rateLimit int, now time.Time) (*APIKey, error) {
	var apiKey APIKey
	err := db.Unscoped().Where("key = ?", key).First(&apiKey).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		apiKey = APIKey{Key: key, Name: name, KeyPreview: preview, RateLimit: rateLimit}
		if err := db.Create(&apiKey).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case apiKey.DeletedAt.Valid:
		return nil, ErrKeyRevoked
	}

	apiKey.LastUsed = &now
	if err := db.Model(&apiKey).Update("last_used", now).Error; err != nil {
		return nil, err
	}
	return &apiKey, nil
}
