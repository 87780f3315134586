package integrity

import (
	"github.com/Kappa-h/fibulopedia/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for content validation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleCheck)
	group.Get("/files", h.HandleFilesCheck)
	group.Get("/references", h.HandleReferencesCheck)
}

// HandleCheck runs all content validation checks.
// @Summary Run All Content Checks
// @Description Validates content files and the cross-references between collections (dropped_by vs monsters, loot listings).
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering content validation")
	return c.JSON(h.service.Check())
}

// HandleFilesCheck reports which content files failed to load.
// @Summary Check Content Files
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "File Report"
// @Router /integrity/files [get]
func (h *Handler) HandleFilesCheck(c *fiber.Ctx) error {
	errs := h.service.CheckFiles()
	return c.JSON(fiber.Map{
		"status": map[bool]string{true: "ok", false: "degraded"}[len(errs) == 0],
		"errors": errs,
	})
}

// HandleReferencesCheck reports dangling cross-references.
// @Summary Check Cross-References
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Reference Report"
// @Router /integrity/references [get]
func (h *Handler) HandleReferencesCheck(c *fiber.Ctx) error {
	refs := h.service.CheckDroppedBy()
	return c.JSON(fiber.Map{
		"dangling_refs": refs,
		"clean":         len(refs) == 0,
	})
}
