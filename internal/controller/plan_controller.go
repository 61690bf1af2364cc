package controller

import (
	"github.com/gofiber/fiber/v2"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/pkg/serverutils"
	"zeus-ai-be/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	GeneratePlan(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
	configErr   error
}

func NewPlanController(planService service.IPlanService, configErr error) IPlanController {
	return &planController{
		planService: planService,
		configErr:   configErr,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	r.Post("generate-action-plan", c.GeneratePlan)
}

func (c *planController) GeneratePlan(ctx *fiber.Ctx) error {
	if c.configErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, c.configErr.Error())
	}

	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actionPlan := c.planService.GeneratePlan(ctx.Context(), &req)

	return ctx.JSON(dto.GeneratePlanResponse{Plan: actionPlan})
}
