package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AllLabels is the label key used for availability given in the legacy
// per-day boolean shape. It is expanded to concrete labels on ingestion.
const AllLabels = "*"

// Availability maps day name -> shift label -> available.
type Availability map[string]map[string]bool

// Available reports whether the slot is open. Missing entries are false.
func (a Availability) Available(day, label string) bool {
	return a[day][label]
}

// IsLegacy reports whether any day still uses the per-day boolean shape.
func (a Availability) IsLegacy() bool {
	for _, labels := range a {
		if _, ok := labels[AllLabels]; ok {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts both {"Mon": {"Lunch": true}} and the older {"Mon": true}.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Availability, len(raw))
	for day, msg := range raw {
		var on bool
		if err := json.Unmarshal(msg, &on); err == nil {
			out[day] = map[string]bool{AllLabels: on}
			continue
		}
		var labels map[string]bool
		if err := json.Unmarshal(msg, &labels); err != nil {
			return fmt.Errorf("availability for %s: %w", day, err)
		}
		out[day] = labels
	}
	*a = out
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for roster files.
func (a *Availability) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Availability, len(raw))
	for day, n := range raw {
		if n.Kind == yaml.ScalarNode {
			var on bool
			if err := n.Decode(&on); err != nil {
				return fmt.Errorf("availability for %s: %w", day, err)
			}
			out[day] = map[string]bool{AllLabels: on}
			continue
		}
		var labels map[string]bool
		if err := n.Decode(&labels); err != nil {
			return fmt.Errorf("availability for %s: %w", day, err)
		}
		out[day] = labels
	}
	*a = out
	return nil
}
