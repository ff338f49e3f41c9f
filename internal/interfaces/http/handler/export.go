package handler

import (
	"fmt"
	"time"

	"github.com/atelier/backend/internal/application/export"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles catalog export downloads
type ExportHandler struct {
	BaseHandler
	exporter *export.ProductExporter
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exporter *export.ProductExporter) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// ExportProductsCSV streams the catalog as a CSV download
func (h *ExportHandler) ExportProductsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", attachmentFilename("csv"))
	if err := h.exporter.WriteCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already out; all we can do is log via gin errors
		_ = c.Error(err)
	}
}

// ExportProductsJSON streams the catalog as a JSON download
func (h *ExportHandler) ExportProductsJSON(c *gin.Context) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Header("Content-Disposition", attachmentFilename("json"))
	if err := h.exporter.WriteJSON(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func attachmentFilename(ext string) string {
	stamp := time.Now().Format("20060102")
	return fmt.Sprintf(`attachment; filename="products-%s.%s"`, stamp, ext)
}

// RegisterRoutes registers all export routes
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exports := rg.Group("/export")
	{
		exports.GET("/products.csv", h.ExportProductsCSV)
		exports.GET("/products.json", h.ExportProductsJSON)
	}
}
