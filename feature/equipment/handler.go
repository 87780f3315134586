package equipment

import (
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for equipment.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the equipment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/equipment")
	group.Get("/", h.HandleList)
	group.Get("/slots", h.HandleSlots)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists equipment with optional filters.
// @Summary List Equipment
// @Description Lists equipment pieces, optionally filtered by free text, slot and stat ranges.
// @Tags equipment
// @Produce json
// @Param q query string false "Free text over name, slot and dropped_by"
// @Param slot query string false "Exact slot (armor, helmet, legs, boots, shield)"
// @Param min_armor query int false "Minimum armor"
// @Param max_armor query int false "Maximum armor"
// @Param max_weight query number false "Maximum weight"
// @Param sort query string false "Sort key: name, armor, weight"
// @Success 200 {object} map[string]interface{} "Equipment list"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /equipment [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := Filter{
		Query: c.Query("q"),
		Slot:  c.Query("slot"),
		Sort:  c.Query("sort"),
	}
	var err error
	if f.MinArmor, err = web.IntParam(c, "min_armor"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxArmor, err = web.IntParam(c, "max_armor"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxWeight, err = web.FloatParam(c, "max_weight"); err != nil {
		return web.BadRequest(c, err)
	}

	items, err := h.service.List(f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Equipment list failed", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleSlots returns the distinct equipment slots.
// @Summary List Equipment Slots
// @Tags equipment
// @Produce json
// @Success 200 {object} map[string]interface{} "Equipment slots"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /equipment/slots [get]
func (h *Handler) HandleSlots(c *fiber.Ctx) error {
	slots, err := h.service.Slots()
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"slots": slots})
}

// HandleGet returns a single equipment piece by id or slug.
// @Summary Get Equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment id or slug"
// @Success 200 {object} content.Equipment "Equipment"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /equipment/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	e, err := h.service.Get(c.Params("id"))
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(e)
}
