package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apppricing "github.com/vendops/backend/internal/application/pricing"
	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/interfaces/http/middleware"
)

// PriceOverrideHandler handles price override API endpoints
type PriceOverrideHandler struct {
	BaseHandler
	overrideService   *apppricing.OverrideService
	resolutionService *apppricing.ResolutionService
	historyService    *apppricing.HistoryService
	expiryService     *apppricing.ExpiryService
}

// NewPriceOverrideHandler creates a new PriceOverrideHandler
func NewPriceOverrideHandler(
	overrideService *apppricing.OverrideService,
	resolutionService *apppricing.ResolutionService,
	historyService *apppricing.HistoryService,
	expiryService *apppricing.ExpiryService,
) *PriceOverrideHandler {
	return &PriceOverrideHandler{
		overrideService:   overrideService,
		resolutionService: resolutionService,
		historyService:    historyService,
		expiryService:     expiryService,
	}
}

// actor extracts the authenticated actor or aborts with 401
func (h *PriceOverrideHandler) actor(c *gin.Context) (pricing.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return pricing.Actor{}, false
	}
	return actor, true
}

// Create godoc
// @Summary      Create a price override
// @Description  Create a temporary price override for a SKU within a location scope
// @Tags         price-overrides
// @Accept       json
// @Produce      json
// @Param        request body apppricing.CreateOverrideRequest true "Override creation request"
// @Success      201 {object} dto.Response{data=apppricing.OverrideResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides [post]
func (h *PriceOverrideHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req apppricing.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	override, err := h.overrideService.Create(c.Request.Context(), req, actor, middleware.RequestMeta(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, override)
}

// GetByID godoc
// @Summary      Get a price override by ID
// @Tags         price-overrides
// @Produce      json
// @Param        id path string true "Override ID" format(uuid)
// @Success      200 {object} dto.Response{data=apppricing.OverrideResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/{id} [get]
func (h *PriceOverrideHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid override ID format")
		return
	}

	override, err := h.overrideService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, override)
}

// List godoc
// @Summary      List price overrides
// @Description  List overrides with optional filters and pagination
// @Tags         price-overrides
// @Produce      json
// @Param        sku_id query string false "Filter by SKU ID" format(uuid)
// @Param        sku_code query string false "Filter by SKU code"
// @Param        state query string false "Filter by state"
// @Param        district query string false "Filter by district"
// @Param        area_id query string false "Filter by area ID" format(uuid)
// @Param        machine_id query string false "Filter by machine ID"
// @Param        status query string false "Filter by status" Enums(active, inactive, expired)
// @Param        start_date_from query string false "Start date lower bound (YYYY-MM-DD)"
// @Param        start_date_to query string false "Start date upper bound (YYYY-MM-DD)"
// @Param        order_by query string false "Sort column (whitelisted; default priority then recency)"
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]apppricing.OverrideResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides [get]
func (h *PriceOverrideHandler) List(c *gin.Context) {
	var filter apppricing.OverrideListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	overrides, total, err := h.overrideService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	h.SuccessWithMeta(c, overrides, total, page, limit)
}

// Update godoc
// @Summary      Update a price override
// @Description  Apply a partial patch to an override. Expired overrides reject all mutations.
// @Tags         price-overrides
// @Accept       json
// @Produce      json
// @Param        id path string true "Override ID" format(uuid)
// @Param        request body apppricing.UpdateOverrideRequest true "Override patch"
// @Success      200 {object} dto.Response{data=apppricing.OverrideResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/{id} [put]
func (h *PriceOverrideHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid override ID format")
		return
	}

	var req apppricing.UpdateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	override, err := h.overrideService.Update(c.Request.Context(), id, req, actor, middleware.RequestMeta(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, override)
}

// UpdateStatus godoc
// @Summary      Activate or deactivate a price override
// @Tags         price-overrides
// @Accept       json
// @Produce      json
// @Param        id path string true "Override ID" format(uuid)
// @Param        request body apppricing.UpdateStatusRequest true "Target status"
// @Success      200 {object} dto.Response{data=apppricing.OverrideResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/{id}/status [patch]
func (h *PriceOverrideHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid override ID format")
		return
	}

	var req apppricing.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	override, err := h.overrideService.UpdateStatus(c.Request.Context(), id, req, actor, middleware.RequestMeta(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, override)
}

// Delete godoc
// @Summary      Delete a price override
// @Description  Hard-delete an override. Its final state is preserved in the audit trail.
// @Tags         price-overrides
// @Produce      json
// @Param        id path string true "Override ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/{id} [delete]
func (h *PriceOverrideHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid override ID format")
		return
	}

	if err := h.overrideService.Delete(c.Request.Context(), id, actor, middleware.RequestMeta(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListBySKU godoc
// @Summary      List overrides for a SKU
// @Description  All non-expired overrides for a SKU, most specific first
// @Tags         price-overrides
// @Produce      json
// @Param        skuId path string true "SKU ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]apppricing.OverrideResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/sku/{skuId} [get]
func (h *PriceOverrideHandler) ListBySKU(c *gin.Context) {
	skuID, err := uuid.Parse(c.Param("skuId"))
	if err != nil {
		h.BadRequest(c, "Invalid SKU ID format")
		return
	}

	overrides, err := h.overrideService.ListBySKU(c.Request.Context(), skuID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, overrides)
}

// GetEffectivePrice godoc
// @Summary      Resolve the effective price for a SKU
// @Description  Resolve which single price applies for a SKU given an optional location context. Falls back to the base price when no override matches.
// @Tags         price-overrides
// @Produce      json
// @Param        skuId path string true "SKU ID" format(uuid)
// @Param        machine_id query string false "Machine context"
// @Param        area_id query string false "Area context" format(uuid)
// @Param        district query string false "District context"
// @Param        state query string false "State context"
// @Success      200 {object} dto.Response{data=apppricing.EffectivePriceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/sku/{skuId}/effective-price [get]
func (h *PriceOverrideHandler) GetEffectivePrice(c *gin.Context) {
	skuID, err := uuid.Parse(c.Param("skuId"))
	if err != nil {
		h.BadRequest(c, "Invalid SKU ID format")
		return
	}

	var query apppricing.EffectivePriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.resolutionService.Resolve(c.Request.Context(), skuID, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListHistory godoc
// @Summary      List the audit trail
// @Description  List audit records across all overrides, newest first
// @Tags         price-overrides
// @Produce      json
// @Param        price_override_id query string false "Filter by override ID" format(uuid)
// @Param        sku_id query string false "Filter by SKU ID" format(uuid)
// @Param        action query string false "Filter by action" Enums(CREATE, UPDATE, DELETE, ACTIVATE, DEACTIVATE, EXPIRE)
// @Param        user_id query string false "Filter by acting user" format(uuid)
// @Param        from query string false "Date lower bound (YYYY-MM-DD)"
// @Param        to query string false "Date upper bound (YYYY-MM-DD)"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]apppricing.HistoryResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/history [get]
func (h *PriceOverrideHandler) ListHistory(c *gin.Context) {
	var filter apppricing.HistoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entries, total, err := h.historyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	h.SuccessWithMeta(c, entries, total, page, limit)
}

// ListHistoryByOverride godoc
// @Summary      List the audit trail for one override
// @Tags         price-overrides
// @Produce      json
// @Param        id path string true "Override ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]apppricing.HistoryResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/{id}/history [get]
func (h *PriceOverrideHandler) ListHistoryByOverride(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid override ID format")
		return
	}

	var filter apppricing.HistoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	filter.PriceOverrideID = &id

	entries, total, err := h.historyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	h.SuccessWithMeta(c, entries, total, page, limit)
}

// TriggerExpiry godoc
// @Summary      Run the expiry sweep
// @Description  Transition active overrides past their end date into the expired state. Idempotent; repeated runs touch nothing new.
// @Tags         price-overrides
// @Produce      json
// @Success      200 {object} dto.Response{data=apppricing.ExpiryResultResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /price-overrides/expire [post]
func (h *PriceOverrideHandler) TriggerExpiry(c *gin.Context) {
	if _, ok := h.actor(c); !ok {
		return
	}

	result, err := h.expiryService.Sweep(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
