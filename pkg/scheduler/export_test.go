package scheduler

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

func TestWriteCSV(t *testing.T) {
	lunch := shift("a", 0, "Server", "Lunch", "12:00", "16:00").WithEmployee("e1")
	lunch.DateISO = "2024-06-03T00:00:00Z"
	dinner := shift("b", 1, "Cook", "Dinner", "16:00", "22:30")
	dinner.DateISO = "2024-06-04T00:00:00Z"
	ghost := shift("c", 1, "Cook", "Dinner", "16:00", "22:30").WithEmployee("e9")

	var buf bytes.Buffer
	err := WriteCSV(&buf, []models.ShiftInstance{lunch, dinner, ghost}, []models.Employee{{ID: "e1", Name: "Ava"}})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"Mon", "2024-06-03", "Lunch", "Server", "12:00", "16:00", "4.00", "Ava"}, rows[1])
	assert.Equal(t, []string{"Tue", "2024-06-04", "Dinner", "Cook", "16:00", "22:30", "6.50", "(unassigned)"}, rows[2])
	assert.Equal(t, "e9", rows[3][7])
}
