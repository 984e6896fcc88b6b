package handler

import (
	"errors"
	"strings"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	profile := app.Group("/api/profile")
	profile.Get("/:userId", h.Get)
	profile.Put("/:userId", h.Update)
	profile.Post("/", h.Create)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(c.UserContext(), c.Params("userId"))
	if errors.Is(err, service.ErrNotFound) {
		return util.NotFound(c, "Profile not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch profile"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: profile})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var update dto.ProfileUpdate
	if err := c.BodyParser(&update); err != nil || update.IsEmpty() {
		return util.BadRequest(c, "Profile data is required")
	}

	profile, err := h.uc.Update(c.UserContext(), c.Params("userId"), update)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to update profile"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: profile})
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var profile model.UserProfile
	if err := c.BodyParser(&profile); err != nil || strings.TrimSpace(profile.UserID) == "" {
		return util.BadRequest(c, "Profile data with user_id is required")
	}

	created, err := h.uc.Create(c.UserContext(), profile)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to create profile"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Code: fiber.StatusCreated, Data: created})
}
