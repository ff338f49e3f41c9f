package handler

import (
	"encoding/json"
	"io"

	settingsapp "github.com/atelier/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles configuration API endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSKUConfig returns the SKU generation configuration
func (h *SettingsHandler) GetSKUConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetSKUConfig(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// UpdateSKUConfig replaces the SKU generation configuration
func (h *SettingsHandler) UpdateSKUConfig(c *gin.Context) {
	var req settingsapp.SKUConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.settingsService.UpdateSKUConfig(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// GetGS1Config returns the GS1 barcode configuration
func (h *SettingsHandler) GetGS1Config(c *gin.Context) {
	cfg, err := h.settingsService.GetGS1Config(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// UpdateGS1Config replaces the GS1 barcode configuration. The stored
// sequence counter is preserved regardless of the submitted value.
func (h *SettingsHandler) UpdateGS1Config(c *gin.Context) {
	var req settingsapp.GS1ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.settingsService.UpdateGS1Config(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// GetEditorConfig returns the opaque editor configuration document
func (h *SettingsHandler) GetEditorConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetEditorConfig(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// UpdateEditorConfig stores the editor configuration document as-is
func (h *SettingsHandler) UpdateEditorConfig(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "unable to read request body")
		return
	}
	if !json.Valid(body) {
		h.BadRequest(c, "request body must be valid JSON")
		return
	}

	cfg, err := h.settingsService.UpdateEditorConfig(c.Request.Context(), json.RawMessage(body))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("/sku", h.GetSKUConfig)
		settings.PUT("/sku", h.UpdateSKUConfig)
		settings.GET("/gs1", h.GetGS1Config)
		settings.PUT("/gs1", h.UpdateGS1Config)
		settings.GET("/editor", h.GetEditorConfig)
		settings.PUT("/editor", h.UpdateEditorConfig)
	}
}
