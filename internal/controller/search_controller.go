package controller

import (
	"github.com/gofiber/fiber/v2"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/pkg/logger"
	"zeus-ai-be/internal/pkg/serverutils"
	"zeus-ai-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeAndSearch(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
	sysLogger     logger.ILogger
	configErr     error
}

// NewSearchController wires the search endpoint. configErr carries a
// provider-construction failure (missing credential); when set, every
// request answers 500 with a machine-readable error instead of panicking at
// startup, matching the original server's behavior.
func NewSearchController(searchService service.ISearchService, sysLogger logger.ILogger, configErr error) ISearchController {
	return &searchController{
		searchService: searchService,
		sysLogger:     sysLogger,
		configErr:     configErr,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	r.Post("analyze-and-search", c.AnalyzeAndSearch)
}

func (c *searchController) AnalyzeAndSearch(ctx *fiber.Ctx) error {
	if c.configErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, c.configErr.Error())
	}

	var req dto.AnalyzeAndSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.AnalyzeAndSearch(ctx.Context(), &req)
	if err != nil {
		c.sysLogger.Error("search", "analyze-and-search failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	return ctx.JSON(res)
}
