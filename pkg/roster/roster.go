// Package roster reads and writes roster and shift files for the CLI.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// Load decodes a roster from a .yaml/.yml or .json file and fills missing role ids.
func Load(path string) (models.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Roster{}, err
	}
	defer f.Close()

	r, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return models.Roster{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return r, nil
}

// Decode reads a roster in the format named by ext (".json", anything else is YAML).
func Decode(rd io.Reader, ext string) (models.Roster, error) {
	var r models.Roster
	if strings.EqualFold(ext, ".json") {
		if err := json.NewDecoder(rd).Decode(&r); err != nil {
			return models.Roster{}, err
		}
	} else {
		dec := yaml.NewDecoder(rd)
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return models.Roster{}, err
		}
	}
	for i := range r.Roles {
		if r.Roles[i].ID == "" {
			r.Roles[i].ID = uuid.NewString()
		}
	}
	return r, nil
}

// LoadShifts reads a JSON array of shift instances, or an object with a
// "shifts" field as written by the run and generate commands.
func LoadShifts(path string) ([]models.ShiftInstance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var shifts []models.ShiftInstance
	if err := json.Unmarshal(data, &shifts); err == nil {
		return shifts, nil
	}
	var wrapped struct {
		Shifts []models.ShiftInstance `json:"shifts"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return wrapped.Shifts, nil
}
