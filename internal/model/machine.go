package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MachineKind is the type of a laundry machine.
type MachineKind string

const (
	KindWasher MachineKind = "washer"
	KindDryer  MachineKind = "dryer"
)

// MachineStatus is the externally reported state of a machine.
type MachineStatus string

const (
	StatusAvailable   MachineStatus = "available"
	StatusInUse       MachineStatus = "in-use"
	StatusMaintenance MachineStatus = "maintenance"
)

// Machine is a single washer or dryer owned by a shop.
// TimeRemainingMinutes is only meaningful while the machine is in use.
// RemainingUnknown marks an in-use machine whose feed omitted the remaining time.
type Machine struct {
	ID                   string        `json:"id" yaml:"id"`
	Kind                 MachineKind   `json:"type" yaml:"type"`
	Status               MachineStatus `json:"status" yaml:"status"`
	TimeRemainingMinutes int           `json:"timeRemaining" yaml:"time_remaining"`
	Capacity             string        `json:"capacity" yaml:"capacity"`
	RemainingUnknown     bool          `json:"-" yaml:"-"`
}

type plainMachine Machine

// UnmarshalJSON decodes a machine and records whether an in-use machine came without
// a remaining time.
func (m *Machine) UnmarshalJSON(data []byte) error {
	var raw struct {
		plainMachine
		TimeRemaining *int `json:"timeRemaining"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Machine(raw.plainMachine)
	if raw.TimeRemaining != nil {
		m.TimeRemainingMinutes = *raw.TimeRemaining
	}
	m.RemainingUnknown = m.Status == StatusInUse && raw.TimeRemaining == nil
	return nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (m *Machine) UnmarshalYAML(value *yaml.Node) error {
	var p plainMachine
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = Machine(p)
	m.RemainingUnknown = m.Status == StatusInUse && !hasKey(value, "time_remaining")
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
