package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	locationapp "github.com/vendops/backend/internal/application/location"
	"github.com/vendops/backend/internal/interfaces/http/middleware"
)

// AreaHandler handles read-only area endpoints from the external
// location system.
type AreaHandler struct {
	BaseHandler
	areaService *locationapp.AreaQueryService
}

// NewAreaHandler creates a new AreaHandler
func NewAreaHandler(areaService *locationapp.AreaQueryService) *AreaHandler {
	return &AreaHandler{
		areaService: areaService,
	}
}

// GetByID godoc
// @Summary      Get area by ID
// @Tags         locations
// @Produce      json
// @Param        id path string true "Area ID" format(uuid)
// @Success      200 {object} dto.Response{data=locationapp.AreaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /locations/areas/{id} [get]
func (h *AreaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid area ID format")
		return
	}

	area, err := h.areaService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, area)
}

// List godoc
// @Summary      List areas
// @Tags         locations
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        state query string false "Filter by state"
// @Param        district query string false "Filter by district"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]locationapp.AreaResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /locations/areas [get]
func (h *AreaHandler) List(c *gin.Context) {
	var filter locationapp.AreaListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	areas, total, err := h.areaService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, areas, total, page, pageSize)
}
