package picker

import (
	"outfit-picker/core/fault"
	"outfit-picker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for outfit picking.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the picker routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/outfits")
	group.Get("/:category/next", h.HandleNext)
	group.Post("/:category/worn", h.HandleWorn)
}

// wornRequest is the body of a mark-worn call.
type wornRequest struct {
	FileName string `json:"file_name"`
}

// HandleNext picks the next outfit for a category.
// @Summary Pick Next Outfit
// @Description Picks one unworn outfit uniformly at random from the category's current rotation cycle.
// @Tags outfits
// @Accept json
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} map[string]interface{} "Pick, or status=none when nothing is available"
// @Failure 404 {object} map[string]string "Category Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /outfits/{category}/next [get]
func (h *Handler) HandleNext(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	category := c.Params("category")

	pick, err := h.service.Next(c.Context(), category)
	if err != nil {
		l.Error("Pick failed", zap.String("category", category), zap.Error(err))
		return respondError(c, err)
	}
	if pick == nil {
		return c.JSON(fiber.Map{
			"status":   "none",
			"category": category,
		})
	}

	l.Info("Outfit picked",
		zap.String("category", category),
		zap.String("outfit", pick.FileName),
		zap.Int("remaining", pick.Remaining))
	return c.JSON(fiber.Map{
		"status": "picked",
		"pick":   pick,
	})
}

// HandleWorn marks an outfit as worn.
// @Summary Mark Outfit Worn
// @Description Records an outfit as worn in the current cycle. Completing the cycle resets the category and is reported distinctly.
// @Tags outfits
// @Accept json
// @Produce json
// @Param category path string true "Category name"
// @Param request body wornRequest true "Outfit file name"
// @Success 200 {object} map[string]interface{} "Wear result"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 404 {object} map[string]string "Category Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /outfits/{category}/worn [post]
func (h *Handler) HandleWorn(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	category := c.Params("category")

	var req wornRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.MarkWorn(c.Context(), category, req.FileName)
	if err != nil {
		l.Error("Mark worn failed",
			zap.String("category", category),
			zap.String("outfit", req.FileName),
			zap.Error(err))
		return respondError(c, err)
	}

	status := "worn"
	if result.CycleCompleted {
		status = "cycle_completed"
		l.Info("Rotation cycle completed", zap.String("category", category))
	}
	return c.JSON(fiber.Map{
		"status": status,
		"result": result,
	})
}

// respondError maps fault kinds onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch kind, _ := fault.KindOf(err); kind {
	case fault.KindInvalidInput:
		status = fiber.StatusBadRequest
	case fault.KindCategoryNotFound:
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
