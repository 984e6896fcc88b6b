package handler

import (
	"errors"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TemplateHandler struct {
	uc *usecase.TemplateUsecase
}

func NewTemplateHandler(uc *usecase.TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

func (h *TemplateHandler) RegisterRoutes(app *fiber.App) {
	templates := app.Group("/api/templates")
	templates.Get("/", h.List)
	templates.Get("/:id", h.Get)
	templates.Post("/:id/generate", h.Generate)
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: h.uc.List()})
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	tmpl, err := h.uc.Get(c.Params("id"))
	if errors.Is(err, usecase.ErrTemplateNotFound) {
		return util.NotFound(c, "Template not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch template"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: tmpl})
}

func (h *TemplateHandler) Generate(c *fiber.Ctx) error {
	var req dto.TemplateGenerateRequest
	if err := c.BodyParser(&req); err != nil || req.UserData == nil {
		return util.BadRequest(c, "User data is required")
	}

	res, err := h.uc.Generate(c.Params("id"), *req.UserData)
	if errors.Is(err, usecase.ErrTemplateNotFound) {
		return util.NotFound(c, "Template not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to generate resume from template"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}
