package serverinfo

import (
	"errors"

	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for server information.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the server info routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/server")
	group.Get("/", h.HandleInfo)
	group.Get("/rates/:name", h.HandleRate)
}

// HandleInfo returns the server information document.
// @Summary Get Server Info
// @Description Returns server name, description, rates and version.
// @Tags server
// @Produce json
// @Success 200 {object} content.ServerInfo "Server info"
// @Failure 503 {object} map[string]string "Server info unavailable"
// @Router /server [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	info, err := h.service.Info()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Server info unavailable", zap.Error(err))
		return web.Error(c, err)
	}
	return c.JSON(info)
}

// HandleRate returns one server rate by name.
// @Summary Get Server Rate
// @Tags server
// @Produce json
// @Param name path string true "Rate name (exp, loot, skill, magic)"
// @Success 200 {object} map[string]interface{} "Rate"
// @Failure 404 {object} map[string]string "Unknown rate"
// @Router /server/rates/{name} [get]
func (h *Handler) HandleRate(c *fiber.Ctx) error {
	name := c.Params("name")
	rate, err := h.service.Rate(name)
	if err != nil {
		if errors.Is(err, ErrRateUnknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return web.Error(c, err)
	}
	return c.JSON(fiber.Map{"name": name, "rate": rate})
}
