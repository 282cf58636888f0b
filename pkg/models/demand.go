package models

// DemandRow maps shift label -> role name -> number of shifts to generate.
type DemandRow map[string]map[string]int

// Count returns the demand for a cell, 0 when absent.
func (r DemandRow) Count(label, role string) int {
	return r[label][role]
}

// DemandSpec is normalized demand, either one row for every day or one row per day.
type DemandSpec struct {
	Global   DemandRow            `json:"global"`
	Daily    map[string]DemandRow `json:"daily,omitempty"`
	UseDaily bool                 `json:"use_daily"`
}

// RowFor returns the demand row active on the given day index.
func (d DemandSpec) RowFor(day int) DemandRow {
	if d.UseDaily {
		return d.Daily[DayName(day)]
	}
	return d.Global
}

// RawDemandRow is demand as supplied by editors and files: counts may be
// numbers, numeric strings or garbage until normalized.
type RawDemandRow map[string]map[string]any

// RawDemand is the unnormalized form of DemandSpec.
type RawDemand struct {
	Global   RawDemandRow            `json:"global" yaml:"global"`
	Daily    map[string]RawDemandRow `json:"daily,omitempty" yaml:"daily,omitempty"`
	UseDaily bool                    `json:"use_daily" yaml:"use_daily"`
}
