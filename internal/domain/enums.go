package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase is a project status label from the fixed renovation vocabulary.
type Phase string

const (
	PhaseScopeVision Phase = "Scope & Vision"
	PhaseDesign      Phase = "Design"
	PhaseBids        Phase = "Bids"
	PhasePermits     Phase = "Permits"
	PhaseDemo        Phase = "Demo"
	PhaseRoughIn     Phase = "Rough-in"
	PhaseFinishes    Phase = "Finishes"
	PhasePunchlist   Phase = "Punchlist"
	PhaseComplete    Phase = "Complete"
)

// Phases lists every phase in display order. Any phase may be selected at
// any time; the order carries no transition rule.
var Phases = []Phase{
	PhaseScopeVision,
	PhaseDesign,
	PhaseBids,
	PhasePermits,
	PhaseDemo,
	PhaseRoughIn,
	PhaseFinishes,
	PhasePunchlist,
	PhaseComplete,
}

// FirstPhase is the status every new project starts in.
const FirstPhase = PhaseScopeVision

// Index returns the position of p in Phases, or -1 when p is not a known phase.
func (p Phase) Index() int {
	for i, ph := range Phases {
		if ph == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p belongs to the phase vocabulary.
func (p Phase) Valid() bool {
	return p.Index() >= 0
}

// ParsePhase matches s against the phase vocabulary, ignoring case and
// surrounding whitespace. A 1-based position ("3" for Bids) is also accepted.
func ParsePhase(s string) (Phase, error) {
	trimmed := strings.TrimSpace(s)
	for _, ph := range Phases {
		if strings.EqualFold(string(ph), trimmed) {
			return ph, nil
		}
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= len(Phases) {
		return Phases[n-1], nil
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

// PresetRooms are suggested room names. They are not a constraint: any
// non-empty name is a valid room.
var PresetRooms = []string{
	"Kitchen",
	"Bath",
	"Primary Suite",
	"Living Room",
	"Dining Room",
	"Mudroom",
	"Laundry",
	"Basement",
	"Garage",
	"Deck/Patio",
}

// RoomDeletePolicy decides what happens to weak roomId references when the
// referenced room is removed.
type RoomDeletePolicy string

const (
	// RoomDeleteKeep leaves references dangling. They render as unassigned.
	RoomDeleteKeep RoomDeletePolicy = "keep"
	// RoomDeleteClear resets every reference to the removed room to "".
	RoomDeleteClear RoomDeletePolicy = "clear"
)

// ParseRoomDeletePolicy converts a config value into a policy. Empty means keep.
func ParseRoomDeletePolicy(s string) (RoomDeletePolicy, error) {
	switch RoomDeletePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoomDeleteKeep:
		return RoomDeleteKeep, nil
	case RoomDeleteClear:
		return RoomDeleteClear, nil
	default:
		return "", fmt.Errorf("invalid room delete policy %q (expected keep or clear)", s)
	}
}

// Labels used when a weak room reference is empty or dangling.
const (
	UnassignedRoomLabel = "Unassigned"
	AllRoomsLabel       = "All"
)
