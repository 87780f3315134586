package quests

import (
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for quests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the quests routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/quests")
	group.Get("/", h.HandleList)
	group.Get("/locations", h.HandleLocations)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists quests with optional filters.
// @Summary List Quests
// @Description Lists quests, optionally filtered by free text and location.
// @Tags quests
// @Produce json
// @Param q query string false "Free text over name, location and reward"
// @Param location query string false "Exact quest location"
// @Param sort query string false "Sort key: name, location"
// @Success 200 {object} map[string]interface{} "Quest list"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /quests [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := Filter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
	}

	items, err := h.service.List(f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Quest list failed", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleLocations returns the distinct quest locations.
// @Summary List Quest Locations
// @Tags quests
// @Produce json
// @Success 200 {object} map[string]interface{} "Locations"
// @Failure 503 {object} map[string]string "Collection unavailable"
// @Router /quests/locations [get]
func (h *Handler) HandleLocations(c *fiber.Ctx) error {
	locations, err := h.service.Locations()
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"locations": locations})
}

// HandleGet returns a single quest by id or slug.
// @Summary Get Quest
// @Tags quests
// @Produce json
// @Param id path string true "Quest id or slug"
// @Success 200 {object} content.Quest "Quest"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /quests/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	q, err := h.service.Get(c.Params("id"))
	if err != nil {
		return web.Error(c, err)
	}
	return c.JSON(q)
}
