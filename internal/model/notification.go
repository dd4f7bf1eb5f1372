package model

// CycleKind is the kind of cycle a notification tracks.
type CycleKind string

const (
	CycleWash CycleKind = "wash"
	CycleDry  CycleKind = "dry"
)

// CycleKindFor maps a machine kind to the cycle it runs.
func CycleKindFor(kind MachineKind) (CycleKind, bool) {
	switch kind {
	case KindWasher:
		return CycleWash, true
	case KindDryer:
		return CycleDry, true
	}
	return "", false
}

// NotificationEntry is a user-tracked reference to one machine's running cycle.
// ShopName and MachineID are display references only.
type NotificationEntry struct {
	ID                   string    `json:"id" yaml:"id"`
	ShopName             string    `json:"shopName" yaml:"shop_name"`
	MachineID            string    `json:"machineId" yaml:"machine_id"`
	TimeRemainingMinutes int       `json:"timeRemaining" yaml:"time_remaining"`
	Kind                 CycleKind `json:"type" yaml:"type"`
	IsActive             bool      `json:"isActive" yaml:"is_active"`
}
