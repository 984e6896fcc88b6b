package handler

import (
	"path/filepath"
	"strings"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	uc        *usecase.ChatUsecase
	uploadDir string
	limiter   fiber.Handler
}

// NewChatHandler saves audio under uploadDir/audio. limiter guards the
// transcription route and may be nil.
func NewChatHandler(uc *usecase.ChatUsecase, uploadDir string, limiter fiber.Handler) *ChatHandler {
	return &ChatHandler{uc: uc, uploadDir: uploadDir, limiter: limiter}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	chat := app.Group("/api/chat")
	chat.Post("/message", h.Message)
	chat.Get("/history/:userId", h.History)
	chat.Post("/transcribe", withLimiter(h.limiter, h.Transcribe)...)
}

func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return util.BadRequest(c, "Message is required")
	}

	res, err := h.uc.SendMessage(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to process message"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.UserContext(), c.Params("userId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to fetch chat history"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: history})
}

func (h *ChatHandler) Transcribe(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return util.BadRequest(c, "No audio file uploaded")
	}
	if file.Size > maxUploadSize {
		return util.BadRequest(c, "File too large (max 10MB)")
	}

	path, err := saveUpload(c, "audio", filepath.Join(h.uploadDir, "audio"), uploadName("audio", ".m4a"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to transcribe audio"}, err)
	}

	res, err := h.uc.Transcribe(c.UserContext(), path)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to transcribe audio"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: res})
}
