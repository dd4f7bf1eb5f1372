// Package status derives display values from a single machine or a list of machines.
// Every function here is pure.
package status

import (
	"errors"
	"fmt"

	"laundry-finder-backend/internal/model"
)

// CycleReferenceMinutes is the assumed length of a full cycle used to draw progress.
// It is a heuristic, not a measured value.
const CycleReferenceMinutes = 45

// ErrInvalidState reports machine data whose status and remaining time disagree.
var ErrInvalidState = errors.New("invalid machine state")

const (
	textAvailable   = "Available"
	textMaintenance = "Under maintenance"
)

// Validate checks that the machine's remaining time is consistent with its status.
func Validate(m model.Machine) error {
	switch m.Status {
	case model.StatusAvailable:
		if m.TimeRemainingMinutes != 0 {
			return fmt.Errorf("%w: machine %s is available with %d minutes remaining", ErrInvalidState, m.ID, m.TimeRemainingMinutes)
		}
	case model.StatusInUse:
		if m.RemainingUnknown {
			return fmt.Errorf("%w: machine %s is in use with no remaining time", ErrInvalidState, m.ID)
		}
		if m.TimeRemainingMinutes < 0 {
			return fmt.Errorf("%w: machine %s is in use with negative remaining time %d", ErrInvalidState, m.ID, m.TimeRemainingMinutes)
		}
	case model.StatusMaintenance:
	default:
		return fmt.Errorf("%w: machine %s has unknown status %q", ErrInvalidState, m.ID, m.Status)
	}
	return nil
}

// Label returns the status text shown on a machine tile.
func Label(m model.Machine) (string, error) {
	if err := Validate(m); err != nil {
		return "", err
	}
	switch m.Status {
	case model.StatusAvailable:
		return textAvailable, nil
	case model.StatusInUse:
		return fmt.Sprintf("%d min left", m.TimeRemainingMinutes), nil
	default:
		return textMaintenance, nil
	}
}

// ProgressFraction returns how far through its cycle an in-use machine is, in [0, 1].
func ProgressFraction(m model.Machine) (float64, error) {
	if m.Status != model.StatusInUse {
		return 0, fmt.Errorf("%w: progress requested for machine %s with status %q", ErrInvalidState, m.ID, m.Status)
	}
	if err := Validate(m); err != nil {
		return 0, err
	}
	return clamp01(1 - float64(m.TimeRemainingMinutes)/CycleReferenceMinutes), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NextAvailableMinutes returns the smallest remaining time among in-use machines.
// ok is false when no machine is in use. Machines with an unknown remaining time are skipped.
func NextAvailableMinutes(machines []model.Machine) (minutes int, ok bool) {
	for _, m := range machines {
		if m.Status != model.StatusInUse || m.RemainingUnknown {
			continue
		}
		if !ok || m.TimeRemainingMinutes < minutes {
			minutes = m.TimeRemainingMinutes
			ok = true
		}
	}
	return minutes, ok
}

// AverageWaitMinutes is the mean remaining time over in-use machines with a known
// remaining time, or 0 when there are none.
func AverageWaitMinutes(machines []model.Machine) float64 {
	var sum, n int
	for _, m := range machines {
		if m.Status == model.StatusInUse && !m.RemainingUnknown {
			sum += m.TimeRemainingMinutes
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Tone names the colour family a status is drawn in.
type Tone string

const (
	ToneGreen Tone = "green"
	ToneBlue  Tone = "blue"
	ToneRed   Tone = "red"
)

// ToneOf maps a machine status to its tone. Unknown statuses render as red.
func ToneOf(s model.MachineStatus) Tone {
	switch s {
	case model.StatusAvailable:
		return ToneGreen
	case model.StatusInUse:
		return ToneBlue
	default:
		return ToneRed
	}
}

// FormatMinutes renders a duration in minutes as "23 min" or "1 h 5 min".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}
