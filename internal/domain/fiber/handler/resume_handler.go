package handler

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc        *usecase.ResumeUsecase
	uploadDir string
	limiter   fiber.Handler
}

// NewResumeHandler saves uploads under uploadDir. limiter guards the upload
// route and may be nil.
func NewResumeHandler(uc *usecase.ResumeUsecase, uploadDir string, limiter fiber.Handler) *ResumeHandler {
	return &ResumeHandler{uc: uc, uploadDir: uploadDir, limiter: limiter}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	resume := app.Group("/api/resume")
	resume.Post("/upload", withLimiter(h.limiter, h.Upload)...)
	resume.Post("/generate", h.Generate)
	resume.Post("/analyze", h.Analyze)
	resume.Post("/improve", h.Improve)
	resume.Post("/match", h.Match)

	resumes := app.Group("/api/resumes")
	resumes.Get("/", h.List)
	resumes.Get("/:id", h.Get)
	resumes.Delete("/:id", h.Delete)
	resumes.Get("/:id/matches", h.Matches)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.BadRequest(c, "No file uploaded")
	}
	if !util.IsResumeFile(file.Filename) {
		return util.BadRequest(c, "Only PDF and DOCX files are allowed")
	}
	if file.Size > maxUploadSize {
		return util.BadRequest(c, "File too large (max 10MB)")
	}

	name := uploadName("resume", strings.ToLower(filepath.Ext(file.Filename)))
	path, err := saveUpload(c, "resume", h.uploadDir, name)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to process resume"}, err)
	}

	res, err := h.uc.Upload(c.UserContext(), usecase.UploadInput{
		UserID:       c.FormValue("userId"),
		OriginalName: file.Filename,
		FileName:     name,
		SavedPath:    path,
	})
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to process resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateResumeRequest
	if err := c.BodyParser(&req); err != nil || req.UserData == nil {
		return util.BadRequest(c, "User data is required")
	}

	res, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to generate resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	req, ok := parseResumeContent(c)
	if !ok {
		return util.BadRequest(c, "Resume content is required")
	}
	res, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to analyze resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func (h *ResumeHandler) Improve(c *fiber.Ctx) error {
	req, ok := parseResumeContent(c)
	if !ok {
		return util.BadRequest(c, "Resume content is required")
	}
	res, err := h.uc.Improve(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to improve resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func (h *ResumeHandler) Match(c *fiber.Ctx) error {
	req, ok := parseResumeContent(c)
	if !ok {
		return util.BadRequest(c, "Resume content is required")
	}
	res, err := h.uc.MatchJob(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to match resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func parseResumeContent(c *fiber.Ctx) (dto.ResumeContentRequest, bool) {
	var req dto.ResumeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return req, false
	}
	return req, req.Content() != ""
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	docs, pagination, err := h.uc.List(c.UserContext(), c.Query("userId"), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch resumes"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: fiber.Map{
		"data":       docs,
		"pagination": pagination,
	}})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	doc, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return util.NotFound(c, "Resume not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: doc})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return util.NotFound(c, "Resume not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to delete resume"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: fiber.Map{"message": "Resume deleted successfully"}})
}

func (h *ResumeHandler) Matches(c *fiber.Ctx) error {
	results, err := h.uc.Matches(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return util.NotFound(c, "Resume not found")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to match jobs"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: results})
}
