package handler

import (
	tradeapp "github.com/atelier/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService: orderService,
	}
}

// CreatePurchaseOrder creates a new draft purchase order
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req tradeapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetPurchaseOrder returns a single order with its lines
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ListPurchaseOrders returns a paginated order list
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	var filter tradeapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// AddItem adds a line to a draft order
func (h *PurchaseOrderHandler) AddItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	var req tradeapp.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateItem changes a line quantity on a draft order
func (h *PurchaseOrderHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		h.BadRequest(c, "invalid item id")
		return
	}

	var req tradeapp.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateItemQuantity(c.Request.Context(), id, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RemoveItem removes a line from a draft order
func (h *PurchaseOrderHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		h.BadRequest(c, "invalid item id")
		return
	}

	if err := h.orderService.RemoveItem(c.Request.Context(), id, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SubmitPurchaseOrder submits a draft order to the external ERP
func (h *PurchaseOrderHandler) SubmitPurchaseOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.Submit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ReceivePurchaseOrder marks a submitted order as received and books
// the ordered quantities into stock
func (h *PurchaseOrderHandler) ReceivePurchaseOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.MarkReceived(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// CancelPurchaseOrder cancels an order with a reason
func (h *PurchaseOrderHandler) CancelPurchaseOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	var req tradeapp.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetERPStatus fetches the order status held by the external ERP
func (h *PurchaseOrderHandler) GetERPStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "invalid order id")
		return
	}

	status, err := h.orderService.GetERPStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// TestERPConnection verifies connectivity with the external ERP
func (h *PurchaseOrderHandler) TestERPConnection(c *gin.Context) {
	if err := h.orderService.TestERPConnection(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"connected": true})
}

// RegisterRoutes registers all purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	{
		orders.GET("", h.ListPurchaseOrders)
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("/:id", h.GetPurchaseOrder)
		orders.POST("/:id/items", h.AddItem)
		orders.PUT("/:id/items/:itemId", h.UpdateItem)
		orders.DELETE("/:id/items/:itemId", h.RemoveItem)
		orders.POST("/:id/submit", h.SubmitPurchaseOrder)
		orders.POST("/:id/receive", h.ReceivePurchaseOrder)
		orders.POST("/:id/cancel", h.CancelPurchaseOrder)
		orders.GET("/:id/erp-status", h.GetERPStatus)
	}

	erp := rg.Group("/erp")
	{
		erp.POST("/test-connection", h.TestERPConnection)
	}
}
