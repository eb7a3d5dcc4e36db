package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/vendops/backend/internal/application/catalog"
	"github.com/vendops/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles read-only catalogue endpoints. The catalogue is
// owned by an external system; this service only reads it.
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductQueryService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductQueryService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GetByID godoc
// @Summary      Get product by ID
// @Description  Retrieve a catalogue product by its ID
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// List godoc
// @Summary      List catalogue products
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Search by code or name"
// @Param        status query string false "Filter by status" Enums(active, inactive)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]catalogapp.ProductResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, products, total, page, pageSize)
}
