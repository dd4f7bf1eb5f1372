package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"laundry-finder-backend/internal/model"
)

var machineIDRe = regexp.MustCompile(`(?i)^\s*([wd])\s*[-#]?\s*(\d+)\s*$`)

// ParsedMachineID holds the structured data parsed from a machine identifier such as "w3" or "D-2".
type ParsedMachineID struct {
	Kind model.MachineKind
	Seq  int
}

// Label is the canonical display form, e.g. "W3".
func (p ParsedMachineID) Label() string {
	prefix := "W"
	if p.Kind == model.KindDryer {
		prefix = "D"
	}
	return prefix + strconv.Itoa(p.Seq)
}

// ParseMachineID extracts the machine kind and sequence number from a raw identifier.
func ParseMachineID(raw string) (ParsedMachineID, error) {
	m := machineIDRe.FindStringSubmatch(raw)
	if m == nil {
		return ParsedMachineID{}, fmt.Errorf("unable to parse machine id: %q", raw)
	}

	seq, err := strconv.Atoi(m[2])
	if err != nil || seq <= 0 {
		return ParsedMachineID{}, fmt.Errorf("invalid sequence in machine id: %q", raw)
	}

	kind := model.KindWasher
	if strings.EqualFold(m[1], "d") {
		kind = model.KindDryer
	}
	return ParsedMachineID{Kind: kind, Seq: seq}, nil
}

// MachineLabel returns the display label for a machine id. Ids that do not follow the
// w<N>/d<N> scheme are upper-cased as-is.
func MachineLabel(raw string) string {
	if p, err := ParseMachineID(raw); err == nil {
		return p.Label()
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}
