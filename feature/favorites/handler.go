package favorites

import (
	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for curated lists.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the favorites routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/favorites")
	group.Get("/", h.HandleList)
	group.Get("/:slug/questions", h.HandleQuestions)
	group.Get("/:slug/report", h.HandleReport)
	group.Post("/:slug/sync", h.HandleSync)
}

// HandleList returns the well-known list identifiers.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default":   leetcode.DefaultFavoriteSlug,
		"favorites": leetcode.WellKnownSlugs(),
	})
}

// HandleQuestions returns the current contents of a list.
func (h *Handler) HandleQuestions(c *fiber.Ctx) error {
	slug := leetcode.FavoriteSlug(c.Params("slug"))
	l := logger.WithRayID(h.service.logger, c)

	questions, err := h.service.Questions(c.Context(), slug)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(fiber.Map{
		"favorite_slug": slug,
		"count":         len(questions),
		"questions":     questions,
	})
}

// HandleReport reconciles a list against its latest saved report without writing.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	slug := leetcode.FavoriteSlug(c.Params("slug"))
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Preview(c.Context(), slug)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleSync runs a full sync and writes the dated report.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	slug := leetcode.FavoriteSlug(c.Params("slug"))
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering sync", zap.String("favorite_slug", slug.String()))

	result, err := h.service.Sync(c.Context(), SyncRequest{
		Slug:         slug,
		AutoPrevious: true,
		DryRun:       c.QueryBool("dry_run", false),
	})
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	kind := KindOf(err)
	l.Error("Request failed", zap.String("kind", string(kind)), zap.Error(err))
	return c.Status(kind.StatusCode()).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  kind,
	})
}
