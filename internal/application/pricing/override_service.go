package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vendops/backend/internal/domain/catalog"
	"github.com/vendops/backend/internal/domain/location"
	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/domain/shared"
)

// OverrideService handles the write side of price overrides: creation,
// updates, status changes, deletion, listing. Every mutation takes an
// explicit actor so audit identity never travels through shared state.
type OverrideService struct {
	overrideRepo pricing.PriceOverrideRepository
	historyRepo  pricing.PriceOverrideHistoryRepository
	productRepo  catalog.ProductRepository
	areaRepo     location.AreaRepository
	cache        PriceCache
	logger       *zap.Logger
}

// NewOverrideService creates a new OverrideService. cache may be nil
// when no effective-price cache is configured.
func NewOverrideService(
	overrideRepo pricing.PriceOverrideRepository,
	historyRepo pricing.PriceOverrideHistoryRepository,
	productRepo catalog.ProductRepository,
	areaRepo location.AreaRepository,
	cache PriceCache,
	logger *zap.Logger,
) *OverrideService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverrideService{
		overrideRepo: overrideRepo,
		historyRepo:  historyRepo,
		productRepo:  productRepo,
		areaRepo:     areaRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create validates the request against the catalogue and location
// lookups, checks for conflicting overrides, persists the new override
// with a derived priority and appends a CREATE audit entry.
func (s *OverrideService) Create(ctx context.Context, req CreateOverrideRequest, actor pricing.Actor, meta pricing.RequestMeta) (*OverrideResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.SKUID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SKU", "SKU does not exist in the catalogue")
		}
		return nil, err
	}

	scope := pricing.LocationScope{
		State:     req.State,
		District:  req.District,
		AreaID:    req.AreaID,
		Campus:    req.Campus,
		Tower:     req.Tower,
		Floor:     req.Floor,
		MachineID: req.MachineID,
	}
	if err := s.resolveAreaName(ctx, &scope); err != nil {
		return nil, err
	}

	// The aggregate validates scope, price, dates and reason. Conflicts
	// are only checked for requests that pass validation, so an inverted
	// window is reported as INVALID_DATES rather than as a conflict with
	// whatever record its inverted range happens to intersect.
	override, err := pricing.NewPriceOverride(
		req.SKUID,
		product.Code,
		product.Name,
		product.BasePrice,
		scope,
		req.OverridePrice,
		req.StartDate,
		req.EndDate,
		req.Reason,
		actor.UserID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(ctx, req.SKUID, scope, req.StartDate, req.EndDate, nil); err != nil {
		return nil, err
	}

	if err := s.overrideRepo.Save(ctx, override); err != nil {
		return nil, err
	}

	snapshot := override.Snapshot()
	s.recordHistory(ctx, pricing.HistoryActionCreate, override, nil, &snapshot, nil, actor, meta)
	s.invalidateCache(ctx, override.SKUID)

	response := ToOverrideResponse(override)
	return &response, nil
}

// Update applies a partial patch. Priority is recomputed whenever a
// location field changes. A patch whose only semantic effect is a
// status flip is recorded as ACTIVATE/DEACTIVATE instead of UPDATE.
func (s *OverrideService) Update(ctx context.Context, id uuid.UUID, req UpdateOverrideRequest, actor pricing.Actor, meta pricing.RequestMeta) (*OverrideResponse, error) {
	override, err := s.overrideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if override.Status == pricing.OverrideStatusExpired {
		return nil, shared.NewDomainError("OVERRIDE_EXPIRED", "Expired override cannot be modified")
	}

	before := override.Snapshot()

	scope, scopeChanged := s.patchScope(override.Scope, req)
	if scopeChanged {
		if err := s.resolveAreaName(ctx, &scope); err != nil {
			return nil, err
		}
	}

	price := override.OverridePrice
	if req.OverridePrice != nil {
		price = *req.OverridePrice
	}
	startDate := override.StartDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := override.EndDate
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	reason := override.Reason
	if req.Reason != nil {
		reason = *req.Reason
	}
	termsChanged := !price.Equal(override.OverridePrice) ||
		!startDate.Equal(override.StartDate) ||
		!endDate.Equal(override.EndDate) ||
		reason != override.Reason

	statusChanged := req.Status != nil && *req.Status != string(override.Status)

	// Apply the domain mutations first; they carry the validation. The
	// conflict scan runs only against a patch that validated, and the
	// mutated aggregate is discarded on error since Save never runs.
	if scopeChanged {
		if err := override.UpdateScope(scope, actor.UserID); err != nil {
			return nil, err
		}
	}
	if termsChanged {
		if err := override.UpdateTerms(price, startDate, endDate, reason, actor.UserID); err != nil {
			return nil, err
		}
	}
	if statusChanged {
		if err := s.applyStatus(override, *req.Status, actor.UserID); err != nil {
			return nil, err
		}
	}

	if scopeChanged || termsChanged {
		excludeID := override.ID
		if err := s.checkConflicts(ctx, override.SKUID, override.Scope, override.StartDate, override.EndDate, &excludeID); err != nil {
			return nil, err
		}
	}

	if err := s.overrideRepo.Save(ctx, override); err != nil {
		return nil, err
	}

	after := override.Snapshot()
	changes := pricing.DiffSnapshots(before, after)

	action := pricing.HistoryActionUpdate
	if statusChanged && !scopeChanged && !termsChanged {
		if *req.Status == string(pricing.OverrideStatusActive) {
			action = pricing.HistoryActionActivate
		} else {
			action = pricing.HistoryActionDeactivate
		}
	}

	s.recordHistory(ctx, action, override, &before, &after, changes, actor, meta)
	s.invalidateCache(ctx, override.SKUID)

	response := ToOverrideResponse(override)
	return &response, nil
}

// UpdateStatus flips an override between active and inactive
func (s *OverrideService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest, actor pricing.Actor, meta pricing.RequestMeta) (*OverrideResponse, error) {
	override, err := s.overrideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := override.Snapshot()

	if err := s.applyStatus(override, req.Status, actor.UserID); err != nil {
		return nil, err
	}

	if err := s.overrideRepo.Save(ctx, override); err != nil {
		return nil, err
	}

	after := override.Snapshot()

	action := pricing.HistoryActionDeactivate
	if req.Status == string(pricing.OverrideStatusActive) {
		action = pricing.HistoryActionActivate
	}

	s.recordHistory(ctx, action, override, &before, &after, pricing.DiffSnapshots(before, after), actor, meta)
	s.invalidateCache(ctx, override.SKUID)

	response := ToOverrideResponse(override)
	return &response, nil
}

// Delete hard-removes an override, keeping its final state in the audit trail
func (s *OverrideService) Delete(ctx context.Context, id uuid.UUID, actor pricing.Actor, meta pricing.RequestMeta) error {
	override, err := s.overrideRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	snapshot := override.Snapshot()
	override.MarkDeleted()

	if err := s.overrideRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordHistory(ctx, pricing.HistoryActionDelete, override, &snapshot, nil, nil, actor, meta)
	s.invalidateCache(ctx, override.SKUID)

	return nil
}

// GetByID retrieves an override by ID
func (s *OverrideService) GetByID(ctx context.Context, id uuid.UUID) (*OverrideResponse, error) {
	override, err := s.overrideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOverrideResponse(override)
	return &response, nil
}

// ListBySKU returns all non-expired overrides for a SKU, most specific first
func (s *OverrideService) ListBySKU(ctx context.Context, skuID uuid.UUID) ([]OverrideResponse, error) {
	overrides, err := s.overrideRepo.FindBySKU(ctx, skuID)
	if err != nil {
		return nil, err
	}

	responses := make([]OverrideResponse, 0, len(overrides))
	for i := range overrides {
		responses = append(responses, ToOverrideResponse(&overrides[i]))
	}
	return responses, nil
}

// List returns a filtered, paginated page of overrides
func (s *OverrideService) List(ctx context.Context, filter OverrideListFilter) ([]OverrideResponse, int64, error) {
	repoFilter := pricing.DefaultOverrideFilter()
	repoFilter.SKUID = filter.SKUID
	repoFilter.SKUCode = filter.SKUCode
	repoFilter.State = filter.State
	repoFilter.District = filter.District
	repoFilter.AreaID = filter.AreaID
	repoFilter.MachineID = filter.MachineID
	repoFilter.StartDateFrom = filter.StartDateFrom
	repoFilter.StartDateTo = filter.StartDateTo
	repoFilter.OrderBy = filter.OrderBy
	repoFilter.OrderDir = filter.OrderDir
	if filter.Status != "" {
		status := pricing.OverrideStatus(filter.Status)
		repoFilter.Status = &status
	}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.Limit > 0 {
		repoFilter.PageSize = filter.Limit
	}

	overrides, total, err := s.overrideRepo.FindFiltered(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OverrideResponse, 0, len(overrides))
	for i := range overrides {
		responses = append(responses, ToOverrideResponse(&overrides[i]))
	}
	return responses, total, nil
}

// patchScope overlays the patch's scope fields onto the current scope.
// Nil means unchanged; an explicit empty string clears the field. The
// area reference is cleared through the dedicated clear flag since nil
// already means "leave as is" for pointers.
func (s *OverrideService) patchScope(current pricing.LocationScope, req UpdateOverrideRequest) (pricing.LocationScope, bool) {
	scope := current
	changed := false

	applyString := func(target *string, patch *string) {
		if patch != nil && *patch != *target {
			*target = *patch
			changed = true
		}
	}

	applyString(&scope.State, req.State)
	applyString(&scope.District, req.District)
	applyString(&scope.Campus, req.Campus)
	applyString(&scope.Tower, req.Tower)
	applyString(&scope.Floor, req.Floor)
	applyString(&scope.MachineID, req.MachineID)

	if req.ClearAreaID {
		if scope.AreaID != nil {
			scope.AreaID = nil
			scope.AreaName = ""
			changed = true
		}
	} else if req.AreaID != nil {
		if scope.AreaID == nil || *scope.AreaID != *req.AreaID {
			scope.AreaID = req.AreaID
			changed = true
		}
	}

	return scope, changed
}

// resolveAreaName validates the area reference and denormalizes its name
func (s *OverrideService) resolveAreaName(ctx context.Context, scope *pricing.LocationScope) error {
	if scope.AreaID == nil {
		scope.AreaName = ""
		return nil
	}
	area, err := s.areaRepo.FindByID(ctx, *scope.AreaID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_AREA", "Area does not exist")
		}
		return err
	}
	scope.AreaName = area.Name
	return nil
}

// checkConflicts scans active overrides for the same SKU sharing the
// candidate's most specific scope field with an overlapping window.
// Scopes with no conflict dimension (campus/tower/floor only) are
// accepted and resolved purely by priority at read time.
func (s *OverrideService) checkConflicts(ctx context.Context, skuID uuid.UUID, scope pricing.LocationScope, start, end time.Time, excludeID *uuid.UUID) error {
	field, value, ok := scope.MostSpecificField()
	if !ok {
		return nil
	}

	conflicts, err := s.overrideRepo.FindActiveOverlapping(ctx, skuID, field, value, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return shared.NewDomainError("CONFLICT",
			fmt.Sprintf("An active override (%s) already covers this %s for an overlapping period", conflicts[0].ID, field))
	}
	return nil
}

func (s *OverrideService) applyStatus(override *pricing.PriceOverride, status string, updatedBy uuid.UUID) error {
	switch pricing.OverrideStatus(status) {
	case pricing.OverrideStatusActive:
		return override.Activate(updatedBy)
	case pricing.OverrideStatusInactive:
		return override.Deactivate(updatedBy)
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
	}
}

// recordHistory appends an audit entry. Failures are logged and
// swallowed: the audit trail must never mask the primary mutation.
func (s *OverrideService) recordHistory(
	ctx context.Context,
	action pricing.HistoryAction,
	override *pricing.PriceOverride,
	oldSnapshot, newSnapshot *pricing.OverrideSnapshot,
	changes []pricing.FieldChange,
	actor pricing.Actor,
	meta pricing.RequestMeta,
) {
	entry, err := pricing.NewHistoryEntry(
		action,
		override.ID, override.SKUID, override.SKUCode, override.ProductName,
		oldSnapshot, newSnapshot, changes, actor, meta,
	)
	if err != nil {
		s.logger.Warn("failed to build history entry",
			zap.String("override_id", override.ID.String()),
			zap.String("action", string(action)),
			zap.Error(err))
		return
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append history entry",
			zap.String("override_id", override.ID.String()),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

func (s *OverrideService) invalidateCache(ctx context.Context, skuID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSKU(ctx, skuID); err != nil {
		s.logger.Warn("failed to invalidate price cache",
			zap.String("sku_id", skuID.String()),
			zap.Error(err))
	}
}
