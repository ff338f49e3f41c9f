package handler

import (
	catalogapp "github.com/atelier/backend/internal/application/catalog"
	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// MasterDataHandler handles master data API endpoints: attributes
// (brands, collections, categories, product types), sizes and colors
type MasterDataHandler struct {
	BaseHandler
	masterDataService *catalogapp.MasterDataService
}

// NewMasterDataHandler creates a new MasterDataHandler
func NewMasterDataHandler(masterDataService *catalogapp.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{
		masterDataService: masterDataService,
	}
}

// ListAttributes returns a handler listing all attributes of a kind
func (h *MasterDataHandler) ListAttributes(kind catalog.AttributeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		attrs, err := h.masterDataService.ListAttributes(c.Request.Context(), kind)
		if err != nil {
			h.HandleError(c, err)
			return
		}

		h.Success(c, attrs)
	}
}

// CreateAttribute returns a handler creating a new attribute of a kind
func (h *MasterDataHandler) CreateAttribute(kind catalog.AttributeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogapp.AttributeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		attr, err := h.masterDataService.CreateAttribute(c.Request.Context(), kind, req)
		if err != nil {
			h.HandleError(c, err)
			return
		}

		h.Created(c, attr)
	}
}

// RenameAttribute changes an attribute's display name
func (h *MasterDataHandler) RenameAttribute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid attribute id")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	attr, err := h.masterDataService.RenameAttribute(c.Request.Context(), id, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, attr)
}

// DeleteAttribute deletes an attribute
func (h *MasterDataHandler) DeleteAttribute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid attribute id")
		return
	}

	if err := h.masterDataService.DeleteAttribute(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListSizes returns sizes, optionally filtered by category
func (h *MasterDataHandler) ListSizes(c *gin.Context) {
	sizes, err := h.masterDataService.ListSizes(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sizes)
}

// CreateSize creates a new size within a size category
func (h *MasterDataHandler) CreateSize(c *gin.Context) {
	var req catalogapp.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	size, err := h.masterDataService.CreateSize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, size)
}

// DeleteSize deletes a size
func (h *MasterDataHandler) DeleteSize(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid size id")
		return
	}

	if err := h.masterDataService.DeleteSize(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListColors returns all colors
func (h *MasterDataHandler) ListColors(c *gin.Context) {
	colors, err := h.masterDataService.ListColors(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, colors)
}

// CreateColor creates a new color
func (h *MasterDataHandler) CreateColor(c *gin.Context) {
	var req catalogapp.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	color, err := h.masterDataService.CreateColor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, color)
}

// DeleteColor deletes a color
func (h *MasterDataHandler) DeleteColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid color id")
		return
	}

	if err := h.masterDataService.DeleteColor(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all master data routes
func (h *MasterDataHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attributeResources := []struct {
		path string
		kind catalog.AttributeKind
	}{
		{"/brands", catalog.KindBrand},
		{"/collections", catalog.KindCollection},
		{"/categories", catalog.KindCategory},
		{"/product-types", catalog.KindProductType},
	}
	for _, res := range attributeResources {
		attrs := rg.Group(res.path)
		{
			attrs.GET("", h.ListAttributes(res.kind))
			attrs.POST("", h.CreateAttribute(res.kind))
			attrs.PUT("/:id", h.RenameAttribute)
			attrs.DELETE("/:id", h.DeleteAttribute)
		}
	}

	sizes := rg.Group("/sizes")
	{
		sizes.GET("", h.ListSizes)
		sizes.POST("", h.CreateSize)
		sizes.DELETE("/:id", h.DeleteSize)
	}

	colors := rg.Group("/colors")
	{
		colors.GET("", h.ListColors)
		colors.POST("", h.CreateColor)
		colors.DELETE("/:id", h.DeleteColor)
	}
}
