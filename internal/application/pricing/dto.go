package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/pricing"
)

// CreateOverrideRequest represents a request to create a price override
type CreateOverrideRequest struct {
	SKUID         uuid.UUID       `json:"sku_id" binding:"required"`
	State         string          `json:"state" binding:"max=100"`
	District      string          `json:"district" binding:"max=100"`
	AreaID        *uuid.UUID      `json:"area_id"`
	Campus        string          `json:"campus" binding:"max=100"`
	Tower         string          `json:"tower" binding:"max=100"`
	Floor         string          `json:"floor" binding:"max=50"`
	MachineID     string          `json:"machine_id" binding:"max=100"`
	OverridePrice decimal.Decimal `json:"override_price" binding:"required"`
	StartDate     time.Time       `json:"start_date" binding:"required"`
	EndDate       time.Time       `json:"end_date" binding:"required"`
	Reason        string          `json:"reason" binding:"required,max=500"`
}

// UpdateOverrideRequest represents a partial patch of an override.
// Nil fields are left unchanged; empty strings clear scope fields.
type UpdateOverrideRequest struct {
	State         *string          `json:"state" binding:"omitempty,max=100"`
	District      *string          `json:"district" binding:"omitempty,max=100"`
	AreaID        *uuid.UUID       `json:"area_id"`
	ClearAreaID   bool             `json:"clear_area_id"`
	Campus        *string          `json:"campus" binding:"omitempty,max=100"`
	Tower         *string          `json:"tower" binding:"omitempty,max=100"`
	Floor         *string          `json:"floor" binding:"omitempty,max=50"`
	MachineID     *string          `json:"machine_id" binding:"omitempty,max=100"`
	OverridePrice *decimal.Decimal `json:"override_price"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	Reason        *string          `json:"reason" binding:"omitempty,max=500"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateStatusRequest represents a status-only change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// OverrideResponse represents an override in API responses
type OverrideResponse struct {
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
	Status            string          `json:"status"`
	Priority          int             `json:"priority"`
	CreatedBy         uuid.UUID       `json:"created_by"`
	UpdatedBy         *uuid.UUID      `json:"updated_by,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OverrideListFilter represents query filters for listing overrides
type OverrideListFilter struct {
	SKUID         *uuid.UUID `form:"sku_id"`
	SKUCode       string     `form:"sku_code"`
	State         string     `form:"state"`
	District      string     `form:"district"`
	AreaID        *uuid.UUID `form:"area_id"`
	MachineID     string     `form:"machine_id"`
	Status        string     `form:"status" binding:"omitempty,oneof=active inactive expired"`
	StartDateFrom *time.Time `form:"start_date_from" time_format:"2006-01-02"`
	StartDateTo   *time.Time `form:"start_date_to" time_format:"2006-01-02"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	Limit         int        `form:"limit" binding:"omitempty,min=1,max=100"`
}

// EffectivePriceQuery represents the optional context for a resolution
type EffectivePriceQuery struct {
	MachineID string     `form:"machine_id"`
	AreaID    *uuid.UUID `form:"area_id"`
	District  string     `form:"district"`
	State     string     `form:"state"`
}

// EffectivePriceResponse is the result of an effective-price resolution
type EffectivePriceResponse struct {
	SKUID          uuid.UUID         `json:"sku_id"`
	SKUCode        string            `json:"sku_code"`
	ProductName    string            `json:"product_name"`
	BasePrice      decimal.Decimal   `json:"base_price"`
	EffectivePrice decimal.Decimal   `json:"effective_price"`
	IsOverridden   bool              `json:"is_overridden"`
	Override       *OverrideResponse `json:"override_details,omitempty"`
}

// ExpiryResultResponse reports one sweeper run
type ExpiryResultResponse struct {
	ExpiredCount int64                `json:"expired_count"`
	FailedCount  int64                `json:"failed_count"`
	Totals       pricing.StatusCounts `json:"totals"`
}

// HistoryResponse represents an audit record in API responses
type HistoryResponse struct {
	ID              uuid.UUID                 `json:"id"`
	PriceOverrideID uuid.UUID                 `json:"price_override_id"`
	SKUID           uuid.UUID                 `json:"sku_id"`
	SKUCode         string                    `json:"sku_code"`
	ProductName     string                    `json:"product_name"`
	Action          string                    `json:"action"`
	OldData         *pricing.OverrideSnapshot `json:"old_data,omitempty"`
	NewData         *pricing.OverrideSnapshot `json:"new_data,omitempty"`
	Changes         []pricing.FieldChange     `json:"changes,omitempty"`
	PerformedBy     PerformedBy               `json:"performed_by"`
	IPAddress       string                    `json:"ip_address,omitempty"`
	UserAgent       string                    `json:"user_agent,omitempty"`
	RequestPath     string                    `json:"request_path,omitempty"`
	Timestamp       time.Time                 `json:"timestamp"`
}

// PerformedBy is the actor identity embedded in history responses
type PerformedBy struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`
	Role   string    `json:"role,omitempty"`
}

// HistoryListFilter represents query filters for the audit trail
type HistoryListFilter struct {
	PriceOverrideID *uuid.UUID `form:"price_override_id"`
	SKUID           *uuid.UUID `form:"sku_id"`
	Action          string     `form:"action" binding:"omitempty,oneof=CREATE UPDATE DELETE ACTIVATE DEACTIVATE EXPIRE"`
	UserID          *uuid.UUID `form:"user_id"`
	From            *time.Time `form:"from" time_format:"2006-01-02"`
	To              *time.Time `form:"to" time_format:"2006-01-02"`
	Page            int        `form:"page" binding:"omitempty,min=1"`
	Limit           int        `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ToOverrideResponse converts a domain override to its API shape
func ToOverrideResponse(o *pricing.PriceOverride) OverrideResponse {
	return OverrideResponse{
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
		Status:            string(o.Status),
		Priority:          o.Priority,
		CreatedBy:         o.CreatedBy,
		UpdatedBy:         o.UpdatedBy,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// ToHistoryResponse converts an audit record to its API shape.
// Decoding failures on stored snapshots degrade to nil rather than
// failing the whole query.
func ToHistoryResponse(h *pricing.PriceOverrideHistory) HistoryResponse {
	oldData, _ := h.OldSnapshot()
	newData, _ := h.NewSnapshot()
	changes, _ := h.ChangeList()

	return HistoryResponse{
		ID:              h.ID,
		PriceOverrideID: h.PriceOverrideID,
		SKUID:           h.SKUID,
		SKUCode:         h.SKUCode,
		ProductName:     h.ProductName,
		Action:          string(h.Action),
		OldData:         oldData,
		NewData:         newData,
		Changes:         changes,
		PerformedBy: PerformedBy{
			UserID: h.PerformedByID,
			Email:  h.PerformedByEmail,
			Name:   h.PerformedByName,
			Role:   h.PerformedByRole,
		},
		IPAddress:   h.IPAddress,
		UserAgent:   h.UserAgent,
		RequestPath: h.RequestPath,
		Timestamp:   h.CreatedAt,
	}
}
