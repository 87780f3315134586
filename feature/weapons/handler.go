package weapons

import (
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for weapons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the weapons routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/weapons")
	group.Get("/", h.HandleList)
	group.Get("/types", h.HandleTypes)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists weapons with optional filters.
// @Summary List Weapons
// @Description Lists weapons, optionally filtered by free text, type and stat ranges.
// @Tags weapons
// @Produce json
// @Param q query string false "Free text over name, type and dropped_by"
// @Param type query string false "Exact weapon type (sword, axe, club, distance)"
// @Param min_attack query int false "Minimum attack"
// @Param max_attack query int false "Maximum attack"
// @Param min_defense query int false "Minimum defense"
// @Param max_defense query int false "Maximum defense"
// @Param max_weight query number false "Maximum weight"
// @Param sort query string false "Sort key: name, attack, defense, weight"
// @Success 200 {object} map[string]interface{} "Weapon list"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /weapons [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := Filter{
		Query: c.Query("q"),
		Type:  c.Query("type"),
		Sort:  c.Query("sort"),
	}
	var err error
	if f.MinAttack, err = web.IntParam(c, "min_attack"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxAttack, err = web.IntParam(c, "max_attack"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MinDefense, err = web.IntParam(c, "min_defense"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxDefense, err = web.IntParam(c, "max_defense"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxWeight, err = web.FloatParam(c, "max_weight"); err != nil {
		return web.BadRequest(c, err)
	}

	items, err := h.service.List(f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Weapon list failed", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleTypes returns the distinct weapon types.
// @Summary List Weapon Types
// @Tags weapons
// @Produce json
// @Success 200 {object} map[string]interface{} "Weapon types"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /weapons/types [get]
func (h *Handler) HandleTypes(c *fiber.Ctx) error {
	types, err := h.service.Types()
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"types": types})
}

// HandleGet returns a single weapon by id or slug.
// @Summary Get Weapon
// @Tags weapons
// @Produce json
// @Param id path string true "Weapon id or slug (e.g. 'weapon_001' or 'serpent-sword')"
// @Success 200 {object} content.Weapon "Weapon"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /weapons/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	w, err := h.service.Get(c.Params("id"))
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(w)
}
