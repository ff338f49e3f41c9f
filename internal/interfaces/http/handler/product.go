package handler

import (
	catalogapp "github.com/atelier/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product and variant API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	variantService *catalogapp.VariantService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, variantService *catalogapp.VariantService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		variantService: variantService,
	}
}

// CreateProduct creates a new product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetProduct returns a single product with its variants
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// GetProductByBarcode looks up the product owning a variant barcode
func (h *ProductHandler) GetProductByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		h.BadRequest(c, "barcode is required")
		return
	}

	product, err := h.productService.GetByVariantBarcode(c.Request.Context(), barcode)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListProducts returns a paginated product list
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateProduct updates a product's descriptive fields
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// UpdateProductPrices changes product-level prices and propagates them
// to variants that follow the product price
func (h *ProductHandler) UpdateProductPrices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	var req catalogapp.UpdateProductPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdatePrices(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// DeleteProduct deletes a product and its variants
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddVariant adds a single variant to a product
func (h *ProductHandler) AddVariant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	var req catalogapp.AddVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.variantService.AddVariant(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GenerateSizeVariants creates one variant per size of the product's
// size category, skipping combinations that already exist
func (h *ProductHandler) GenerateSizeVariants(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}

	result, err := h.variantService.GenerateSizeVariants(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateVariant updates a variant's identifiers, prices or stock
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}
	variantID, ok := parseID(c, "variantId")
	if !ok {
		h.BadRequest(c, "invalid variant id")
		return
	}

	var req catalogapp.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	variant, err := h.variantService.UpdateVariant(c.Request.Context(), id, variantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// RemoveVariant removes a variant from a product
func (h *ProductHandler) RemoveVariant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}
	variantID, ok := parseID(c, "variantId")
	if !ok {
		h.BadRequest(c, "invalid variant id")
		return
	}

	if err := h.variantService.RemoveVariant(c.Request.Context(), id, variantID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckIdentifier reports whether a variant's SKU or barcode collides
// with a sibling variant
func (h *ProductHandler) CheckIdentifier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid product id")
		return
	}
	variantID, ok := parseID(c, "variantId")
	if !ok {
		h.BadRequest(c, "invalid variant id")
		return
	}

	var req catalogapp.CheckIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.variantService.CheckIdentifier(c.Request.Context(), id, variantID, req.Field)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ValidateBarcode checks a barcode's check digit
func (h *ProductHandler) ValidateBarcode(c *gin.Context) {
	barcode := c.Query("barcode")
	if barcode == "" {
		h.BadRequest(c, "barcode query parameter is required")
		return
	}

	h.Success(c, gin.H{
		"barcode": barcode,
		"valid":   h.variantService.ValidateBarcode(barcode),
	})
}

// RegisterRoutes registers all product and variant routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/barcode/:barcode", h.GetProductByBarcode)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.PUT("/:id/prices", h.UpdateProductPrices)
		products.DELETE("/:id", h.DeleteProduct)
		products.POST("/:id/variants", h.AddVariant)
		products.POST("/:id/variants/generate", h.GenerateSizeVariants)
		products.PUT("/:id/variants/:variantId", h.UpdateVariant)
		products.DELETE("/:id/variants/:variantId", h.RemoveVariant)
		products.POST("/:id/variants/:variantId/check-identifier", h.CheckIdentifier)
	}

	barcodes := rg.Group("/barcodes")
	{
		barcodes.GET("/validate", h.ValidateBarcode)
	}
}
