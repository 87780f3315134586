package search

import (
	"github.com/Kappa-h/fibulopedia/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cross-entity search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/search")
	group.Get("/", h.HandleSearch)
	group.Get("/:type", h.HandleSearchType)
}

// HandleSearch searches every collection.
// @Summary Global Search
// @Description Free-text search across weapons, equipment, spells, monsters and quests. Results are ranked by relevance; an empty query returns an empty list.
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} map[string]interface{} "Ranked results"
// @Router /search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	q := c.Query("q")
	results := h.service.Search(q)
	logger.WithRayID(h.service.logger, c).Debug("Search request", zap.String("query", q), zap.Int("results", len(results)))
	return c.JSON(fiber.Map{"query": q, "count": len(results), "results": results})
}

// HandleSearchType searches a single entity type.
// @Summary Typed Search
// @Description Free-text search within one entity type. Unknown types yield an empty result list.
// @Tags search
// @Produce json
// @Param type path string true "Entity type (weapon, equipment, spell, monster, quest)"
// @Param q query string false "Search query"
// @Success 200 {object} map[string]interface{} "Ranked results"
// @Router /search/{type} [get]
func (h *Handler) HandleSearchType(c *fiber.Ctx) error {
	q := c.Query("q")
	entityType := c.Params("type")
	results := h.service.SearchType(q, entityType)
	return c.JSON(fiber.Map{"query": q, "type": entityType, "count": len(results), "results": results})
}
