package reconcile

import (
	"outfit-picker/core/fault"
	"outfit-picker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for closet reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Get("/changes", h.HandleChanges)
	group.Post("/apply", h.HandleApply)
}

// HandleChanges reports the pending closet changes.
// @Summary Detect Closet Changes
// @Description Diffs the recorded closet shape against the live filesystem without committing anything.
// @Tags reconcile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Change Set"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/changes [get]
func (h *Handler) HandleChanges(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	cs, err := h.service.DetectChanges(c.Context())
	if err != nil {
		l.Error("Change detection failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"empty":   cs.IsEmpty(),
		"changes": cs,
	})
}

// HandleApply detects and commits closet changes.
// @Summary Apply Closet Changes
// @Description Re-detects closet changes and merges them into the persisted configuration, resetting rotation state if categories were deleted.
// @Tags reconcile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Apply Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	cs, err := h.service.DetectChanges(c.Context())
	if err != nil {
		l.Error("Change detection failed", zap.Error(err))
		return respondError(c, err)
	}

	cfg, reset, err := h.service.UpdateConfig(c.Context(), cs)
	if err != nil {
		l.Error("Config update failed", zap.Error(err))
		return respondError(c, err)
	}

	l.Info("Closet reconciled",
		zap.Int("categories", len(cfg.KnownCategories)),
		zap.Bool("rotation_reset", reset))
	return c.JSON(fiber.Map{
		"changes":        cs,
		"categories":     cfg.KnownCategories,
		"rotation_reset": reset,
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
