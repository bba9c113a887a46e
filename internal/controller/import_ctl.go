package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_api/internal/service"
)

type ImportController struct {
	importSvc *service.CatalogImportService
}

func NewImportController(importSvc *service.CatalogImportService) *ImportController {
	return &ImportController{importSvc: importSvc}
}

// TriggerImport pulls the configured product feed now. The route carries a
// cooldown middleware, so rapid re-triggers get a 429.
// @Summary Trigger feed import
// @Tags Admin
// @Produce json
// @Success 200 {object} service.ImportReport
// @Failure 429 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/import [post]
func (c *ImportController) TriggerImport(ctx *gin.Context) {
	report, err := c.importSvc.Run(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
