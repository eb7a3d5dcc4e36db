package pricing

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/shared"
)

// HistoryAction identifies the mutation an audit entry records
type HistoryAction string

const (
	HistoryActionCreate     HistoryAction = "CREATE"
	HistoryActionUpdate     HistoryAction = "UPDATE"
	HistoryActionDelete     HistoryAction = "DELETE"
	HistoryActionActivate   HistoryAction = "ACTIVATE"
	HistoryActionDeactivate HistoryAction = "DEACTIVATE"
	HistoryActionExpire     HistoryAction = "EXPIRE"
)

// Actor is the identity performing a mutation, supplied by the external
// identity collaborator via the request token.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   string
}

// SystemActor is the synthetic identity used for sweeper-driven mutations
func SystemActor() Actor {
	return Actor{
		UserID: uuid.Nil,
		Email:  "system@vendops.local",
		Name:   "System",
		Role:   "system",
	}
}

// RequestMeta carries best-effort request metadata for audit entries
type RequestMeta struct {
	IPAddress   string
	UserAgent   string
	RequestPath string
}

// OverrideSnapshot is a full, fixed-shape copy of an override's fields
// at a point in time. History rows store snapshots rather than live
// references so the audit trail survives override deletion.
type OverrideSnapshot struct {
	ID                uuid.UUID       `json:"id"`
	SKUID             uuid.UUID       `json:"sku_id"`
	SKUCode           string          `json:"sku_code"`
	ProductName       string          `json:"product_name"`
	OriginalBasePrice decimal.Decimal `json:"original_base_price"`
	State             string          `json:"state,omitempty"`
	District          string          `json:"district,omitempty"`
	AreaID            *uuid.UUID      `json:"area_id,omitempty"`
	AreaName          string          `json:"area_name,omitempty"`
	Campus            string          `json:"campus,omitempty"`
	Tower             string          `json:"tower,omitempty"`
	Floor             string          `json:"floor,omitempty"`
	MachineID         string          `json:"machine_id,omitempty"`
	OverridePrice     decimal.Decimal `json:"override_price"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Reason            string          `json:"reason"`
	Status            OverrideStatus  `json:"status"`
	Priority          int             `json:"priority"`
}

// Snapshot captures the override's current state
func (o *PriceOverride) Snapshot() OverrideSnapshot {
	return OverrideSnapshot{
		ID:                o.ID,
		SKUID:             o.SKUID,
		SKUCode:           o.SKUCode,
		ProductName:       o.ProductName,
		OriginalBasePrice: o.OriginalBasePrice,
		State:             o.Scope.State,
		District:          o.Scope.District,
		AreaID:            o.Scope.AreaID,
		AreaName:          o.Scope.AreaName,
		Campus:            o.Scope.Campus,
		Tower:             o.Scope.Tower,
		Floor:             o.Scope.Floor,
		MachineID:         o.Scope.MachineID,
		OverridePrice:     o.OverridePrice,
		StartDate:         o.StartDate,
		EndDate:           o.EndDate,
		Reason:            o.Reason,
		Status:            o.Status,
		Priority:          o.Priority,
	}
}

// FieldChange records a single scalar field transition within an UPDATE
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// DiffSnapshots compares two snapshots field by field and returns the
// ordered list of scalar fields whose values actually differ.
func DiffSnapshots(before, after OverrideSnapshot) []FieldChange {
	changes := make([]FieldChange, 0)

	appendChange := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}

	uuidPtr := func(id *uuid.UUID) string {
		if id == nil {
			return ""
		}
		return id.String()
	}

	appendChange("state", before.State, after.State)
	appendChange("district", before.District, after.District)
	appendChange("area_id", uuidPtr(before.AreaID), uuidPtr(after.AreaID))
	appendChange("area_name", before.AreaName, after.AreaName)
	appendChange("campus", before.Campus, after.Campus)
	appendChange("tower", before.Tower, after.Tower)
	appendChange("floor", before.Floor, after.Floor)
	appendChange("machine_id", before.MachineID, after.MachineID)
	appendChange("override_price", before.OverridePrice.String(), after.OverridePrice.String())
	appendChange("start_date", before.StartDate.Format(time.RFC3339), after.StartDate.Format(time.RFC3339))
	appendChange("end_date", before.EndDate.Format(time.RFC3339), after.EndDate.Format(time.RFC3339))
	appendChange("reason", before.Reason, after.Reason)
	appendChange("status", string(before.Status), string(after.Status))
	appendChange("priority", strconv.Itoa(before.Priority), strconv.Itoa(after.Priority))

	return changes
}

// PriceOverrideHistory is an immutable audit record, one per mutation.
// Snapshots and the change list are stored as jsonb serialized from the
// fixed-shape structs above.
type PriceOverrideHistory struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	PriceOverrideID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	SKUID            uuid.UUID     `gorm:"column:sku_id;type:uuid;not null;index"`
	SKUCode          string        `gorm:"type:varchar(50);not null"`
	ProductName      string        `gorm:"type:varchar(200);not null"`
	Action           HistoryAction `gorm:"type:varchar(20);not null;index"`
	OldData          string        `gorm:"type:jsonb"`
	NewData          string        `gorm:"type:jsonb"`
	Changes          string        `gorm:"type:jsonb"`
	PerformedByID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	PerformedByEmail string        `gorm:"type:varchar(200)"`
	PerformedByName  string        `gorm:"type:varchar(200)"`
	PerformedByRole  string        `gorm:"type:varchar(100)"`
	IPAddress        string        `gorm:"type:varchar(64)"`
	UserAgent        string        `gorm:"type:varchar(500)"`
	RequestPath      string        `gorm:"type:varchar(500)"`
	CreatedAt        time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PriceOverrideHistory) TableName() string {
	return "price_override_histories"
}

// NewHistoryEntry builds an audit record for one mutation. The old
// snapshot is absent for CREATE; the new snapshot is absent for DELETE.
func NewHistoryEntry(
	action HistoryAction,
	overrideID, skuID uuid.UUID,
	skuCode, productName string,
	oldSnapshot, newSnapshot *OverrideSnapshot,
	changes []FieldChange,
	actor Actor,
	meta RequestMeta,
) (*PriceOverrideHistory, error) {
	entry := &PriceOverrideHistory{
		ID:               uuid.New(),
		PriceOverrideID:  overrideID,
		SKUID:            skuID,
		SKUCode:          skuCode,
		ProductName:      productName,
		Action:           action,
		PerformedByID:    actor.UserID,
		PerformedByEmail: actor.Email,
		PerformedByName:  actor.Name,
		PerformedByRole:  actor.Role,
		IPAddress:        meta.IPAddress,
		UserAgent:        meta.UserAgent,
		RequestPath:      meta.RequestPath,
		CreatedAt:        time.Now(),
	}

	if oldSnapshot != nil {
		data, err := json.Marshal(oldSnapshot)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_SNAPSHOT", "Failed to serialize previous state")
		}
		entry.OldData = string(data)
	}
	if newSnapshot != nil {
		data, err := json.Marshal(newSnapshot)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_SNAPSHOT", "Failed to serialize new state")
		}
		entry.NewData = string(data)
	}
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_SNAPSHOT", "Failed to serialize change list")
		}
		entry.Changes = string(data)
	}

	return entry, nil
}

// OldSnapshot decodes the stored previous state, nil when absent
func (h *PriceOverrideHistory) OldSnapshot() (*OverrideSnapshot, error) {
	if h.OldData == "" {
		return nil, nil
	}
	var snap OverrideSnapshot
	if err := json.Unmarshal([]byte(h.OldData), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// NewSnapshot decodes the stored resulting state, nil when absent
func (h *PriceOverrideHistory) NewSnapshot() (*OverrideSnapshot, error) {
	if h.NewData == "" {
		return nil, nil
	}
	var snap OverrideSnapshot
	if err := json.Unmarshal([]byte(h.NewData), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ChangeList decodes the stored field changes, empty when absent
func (h *PriceOverrideHistory) ChangeList() ([]FieldChange, error) {
	if h.Changes == "" {
		return nil, nil
	}
	var changes []FieldChange
	if err := json.Unmarshal([]byte(h.Changes), &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
