package pricing

import (
	"strings"

	"github.com/google/uuid"
)

// Priority levels derived from the location scope. A more specific scope
// always outranks a broader one at resolution time.
const (
	PriorityNone     = 0
	PriorityState    = 1
	PriorityDistrict = 2
	PriorityArea     = 3
	PriorityLocation = 4
	PriorityMachine  = 5
)

// LocationScope describes where an override applies. All fields are
// optional but at least one must be set. The most specific populated
// field determines the override's priority.
type LocationScope struct {
	State     string     `gorm:"type:varchar(100);index" json:"state,omitempty"`
	District  string     `gorm:"type:varchar(100);index" json:"district,omitempty"`
	AreaID    *uuid.UUID `gorm:"type:uuid;index" json:"area_id,omitempty"`
	AreaName  string     `gorm:"type:varchar(200)" json:"area_name,omitempty"`
	Campus    string     `gorm:"type:varchar(100)" json:"campus,omitempty"`
	Tower     string     `gorm:"type:varchar(100)" json:"tower,omitempty"`
	Floor     string     `gorm:"type:varchar(50)" json:"floor,omitempty"`
	MachineID string     `gorm:"type:varchar(100);index" json:"machine_id,omitempty"`
}

// IsEmpty returns true when no scope field is populated
func (s LocationScope) IsEmpty() bool {
	return s.MachineID == "" &&
		s.Campus == "" && s.Tower == "" && s.Floor == "" &&
		s.AreaID == nil &&
		s.District == "" &&
		s.State == ""
}

// Priority maps the populated fields to a specificity rank:
// machine 5, campus/tower/floor 4, area 3, district 2, state 1.
// The rank is derived from the current field set on every call, never
// read back from storage.
func (s LocationScope) Priority() int {
	switch {
	case s.MachineID != "":
		return PriorityMachine
	case s.Campus != "" || s.Tower != "" || s.Floor != "":
		return PriorityLocation
	case s.AreaID != nil:
		return PriorityArea
	case s.District != "":
		return PriorityDistrict
	case s.State != "":
		return PriorityState
	default:
		return PriorityNone
	}
}

// ScopeField identifies a single location dimension of a scope
type ScopeField string

const (
	ScopeFieldMachine  ScopeField = "machine_id"
	ScopeFieldArea     ScopeField = "area_id"
	ScopeFieldDistrict ScopeField = "district"
	ScopeFieldState    ScopeField = "state"
)

// MostSpecificField returns the narrowest populated dimension used for
// write-time conflict detection, together with its comparable value.
// The location sub-fields (campus/tower/floor) have no dedicated
// conflict dimension and fall through to the next broader field.
func (s LocationScope) MostSpecificField() (ScopeField, string, bool) {
	switch {
	case s.MachineID != "":
		return ScopeFieldMachine, s.MachineID, true
	case s.AreaID != nil:
		return ScopeFieldArea, s.AreaID.String(), true
	case s.District != "":
		return ScopeFieldDistrict, strings.ToLower(s.District), true
	case s.State != "":
		return ScopeFieldState, strings.ToLower(s.State), true
	default:
		return "", "", false
	}
}

// ResolutionContext is the caller-supplied location context for an
// effective-price lookup. Every field is optional.
type ResolutionContext struct {
	MachineID string
	AreaID    *uuid.UUID
	District  string
	State     string
}

// IsEmpty returns true when the caller supplied no context at all
func (c ResolutionContext) IsEmpty() bool {
	return c.MachineID == "" && c.AreaID == nil && c.District == "" && c.State == ""
}
