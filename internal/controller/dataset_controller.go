package controller

import (
	"github.com/gofiber/fiber/v2"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/service"
)

type IDatasetController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type datasetController struct {
	datasetService service.IDatasetService
}

func NewDatasetController(datasetService service.IDatasetService) IDatasetController {
	return &datasetController{
		datasetService: datasetService,
	}
}

func (c *datasetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/datasets")
	h.Post("", c.Upload)
	h.Get(":id", c.Show)
}

func (c *datasetController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadDatasetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.datasetService.Upload(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(res)
}

func (c *datasetController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	dataset, err := c.datasetService.Show(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(dataset)
}
