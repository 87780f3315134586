package monsters

import (
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for monsters.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the monsters routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/monsters")
	group.Get("/", h.HandleList)
	group.Get("/locations", h.HandleLocations)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists monsters with optional filters.
// @Summary List Monsters
// @Description Lists monsters, optionally filtered by free text, location and stat ranges.
// @Tags monsters
// @Produce json
// @Param q query string false "Free text over name, location and loot"
// @Param location query string false "Location substring filter"
// @Param min_hp query int false "Minimum HP"
// @Param max_hp query int false "Maximum HP"
// @Param min_exp query int false "Minimum experience reward"
// @Param max_exp query int false "Maximum experience reward"
// @Param sort query string false "Sort key: name, hp, exp, location"
// @Success 200 {object} map[string]interface{} "Monster list"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /monsters [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := Filter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
	}
	var err error
	if f.MinHP, err = web.IntParam(c, "min_hp"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxHP, err = web.IntParam(c, "max_hp"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MinExp, err = web.IntParam(c, "min_exp"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxExp, err = web.IntParam(c, "max_exp"); err != nil {
		return web.BadRequest(c, err)
	}

	items, err := h.service.List(f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Monster list failed", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleLocations returns the distinct monster locations.
// @Summary List Monster Locations
// @Tags monsters
// @Produce json
// @Success 200 {object} map[string]interface{} "Locations"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /monsters/locations [get]
func (h *Handler) HandleLocations(c *fiber.Ctx) error {
	locations, err := h.service.Locations()
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"locations": locations})
}

// HandleGet returns a single monster by id or slug.
// @Summary Get Monster
// @Tags monsters
// @Produce json
// @Param id path string true "Monster id or slug (e.g. 'monster_001' or 'dragon')"
// @Success 200 {object} content.Monster "Monster"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /monsters/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	m, err := h.service.Get(c.Params("id"))
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(m)
}
