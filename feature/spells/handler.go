package spells

import (
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for spells.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the spells routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/spells")
	group.Get("/", h.HandleList)
	group.Get("/vocations", h.HandleVocations)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists spells with optional filters.
// @Summary List Spells
// @Description Lists spells, optionally filtered by free text, vocation, level and mana ranges.
// @Tags spells
// @Produce json
// @Param q query string false "Free text over name, incantation, effect and vocation"
// @Param vocation query string false "Vocation filter; spells for 'All' always match"
// @Param min_level query int false "Minimum level"
// @Param max_level query int false "Maximum level"
// @Param min_mana query int false "Minimum mana"
// @Param max_mana query int false "Maximum mana"
// @Param sort query string false "Sort key: name, level, mana, vocation"
// @Success 200 {object} map[string]interface{} "Spell list"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /spells [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := Filter{
		Query:    c.Query("q"),
		Vocation: c.Query("vocation"),
		Sort:     c.Query("sort"),
	}
	var err error
	if f.MinLevel, err = web.IntParam(c, "min_level"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxLevel, err = web.IntParam(c, "max_level"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MinMana, err = web.IntParam(c, "min_mana"); err != nil {
		return web.BadRequest(c, err)
	}
	if f.MaxMana, err = web.IntParam(c, "max_mana"); err != nil {
		return web.BadRequest(c, err)
	}

	items, err := h.service.List(f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Spell list failed", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleVocations returns the distinct vocations.
// @Summary List Vocations
// @Tags spells
// @Produce json
// @Success 200 {object} map[string]interface{} "Vocations"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /spells/vocations [get]
func (h *Handler) HandleVocations(c *fiber.Ctx) error {
	vocations, err := h.service.Vocations()
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"vocations": vocations})
}

// HandleGet returns a single spell by id or slug.
// @Summary Get Spell
// @Tags spells
// @Produce json
// @Param id path string true "Spell id or slug"
// @Success 200 {object} content.Spell "Spell"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /spells/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	sp, err := h.service.Get(c.Params("id"))
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(sp)
}
