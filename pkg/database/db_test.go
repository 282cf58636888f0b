package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := InitDB(Options{DataPath: dsn})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRecordUsage_Upserts(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RecordUsage(db, 1, "2024-06-03", 10, 4))
	require.NoError(t, RecordUsage(db, 1, "2024-06-03", 5, 2))
	require.NoError(t, RecordUsage(db, 1, "2024-06-04", 1, 1))
	require.NoError(t, RecordUsage(db, 2, "2024-06-03", 7, 7))

	history, err := UsageHistory(db, 1, 30)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-06-04", history[0].Date)
	assert.Equal(t, 2, history[1].RequestCount)
	assert.Equal(t, 15, history[1].TotalShifts)
	assert.Equal(t, 6, history[1].TotalEmployees)

	n, err := RequestsOn(db, 1, "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = RequestsOn(db, 3, "2024-06-03")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSchedules(t *testing.T) {
	db := testDB(t)
	emp := "e1"
	older := &Schedule{
		KeyID: 1, Title: "June wk1", WeekStart: "2024-06-03",
		ClosedDays: models.ClosedDays{"Sun": true},
		Shifts: []models.ShiftInstance{{
			ID: "s1", Day: 0, DateISO: "2024-06-03T00:00:00Z", Role: "Server",
			Label: "Lunch", Start: "12:00", End: "16:00", EmployeeID: &emp,
		}, {
			ID: "s2", Day: 0, Role: "Cook", Label: "Lunch", Start: "12:00", End: "16:00",
		}},
		CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := &Schedule{KeyID: 1, Title: "June wk2", WeekStart: "2024-06-10", CreatedAt: time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)}
	foreign := &Schedule{KeyID: 2, Title: "Other", WeekStart: "2024-06-03"}

	for _, s := range []*Schedule{older, newer, foreign} {
		require.NoError(t, SaveSchedule(db, s))
		assert.NotEmpty(t, s.ID)
	}

	list, err := ListSchedules(db, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "June wk2", list[0].Title)
	assert.Empty(t, list[1].Shifts)

	got, err := GetSchedule(db, 1, older.ID)
	require.NoError(t, err)
	require.Len(t, got.Shifts, 2)
	assert.Equal(t, "e1", got.Shifts[0].AssignedTo())
	assert.False(t, got.Shifts[1].Assigned())
	assert.True(t, got.ClosedDays["Sun"])

	_, err = GetSchedule(db, 1, foreign.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFindOrRegisterKey(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	first, err := FindOrRegisterKey(db, "bistro.sig", "bistro", "bis...sig", 500, now)
	require.NoError(t, err)
	assert.Equal(t, 500, first.RateLimit)
	require.NotNil(t, first.LastUsed)

	again, err := FindOrRegisterKey(db, "bistro.sig", "ignored", "", 1, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "bistro", again.Name)

	require.NoError(t, db.Delete(&APIKey{}, first.ID).Error)
	_, err = FindOrRegisterKey(db, "bistro.sig", "bistro", "", 500, now)
	assert.ErrorIs(t, err, ErrKeyRevoked)

	var live int64
	require.NoError(t, db.Model(&APIKey{}).Count(&live).Error)
	assert.Zero(t, live)
}
