package core

import (
	"fmt"
	"strings"
)

// SpawnType selects which magnet template a spawn request uses.
type SpawnType int

const (
	SpawnNone SpawnType = iota
	SpawnAttract
	SpawnRepel
	SpawnTrap
	SpawnParabolic
)

// SpawnTypes lists the spawnable types in display order.
var SpawnTypes = []SpawnType{SpawnAttract, SpawnRepel, SpawnTrap, SpawnParabolic}

// String returns the lowercase name used in config files.
func (t SpawnType) String() string {
	switch t {
	case SpawnNone:
		return "none"
	case SpawnAttract:
		return "attract"
	case SpawnRepel:
		return "repel"
	case SpawnTrap:
		return "trap"
	case SpawnParabolic:
		return "parabolic"
	default:
		return "unknown"
	}
}

// ParseSpawnType parses a config name into a SpawnType.
func ParseSpawnType(s string) (SpawnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return SpawnNone, nil
	case "attract":
		return SpawnAttract, nil
	case "repel":
		return SpawnRepel, nil
	case "trap":
		return SpawnTrap, nil
	case "parabolic":
		return SpawnParabolic, nil
	}
	return SpawnNone, fmt.Errorf("unknown spawn type %q", s)
}
