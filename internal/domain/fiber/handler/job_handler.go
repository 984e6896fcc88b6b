package handler

import (
	"strings"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")
	jobs.Get("/", h.List)
	jobs.Post("/", h.Create)
	jobs.Post("/match", h.Match)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch jobs"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: jobs})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Company) == "" {
		return util.BadRequest(c, "Title and company are required")
	}

	job, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to create job"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Code: fiber.StatusCreated, Data: job})
}

func (h *JobHandler) Match(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil || req.UserProfile == nil {
		return util.BadRequest(c, "User profile data is required")
	}

	results, err := h.uc.Match(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to match jobs"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: results})
}
