package util

import (
	"runtime/debug"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code int
	Data any
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Trace      string
}

// OrderedErrorResponse keeps the {"error": "..."} body the mobile client reads;
// the dev fields only appear when APP_ENV=development is set.
type OrderedErrorResponse struct {
	Error      string `json:"error"`
	DevMessage string `json:"dev_message,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse writes data as the JSON body. Code defaults to 200.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(params.Data)
}

// ErrorResponse writes the standard error body. Code defaults to 500.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Error: params.Message,
	}
	if config.LoadAppConfig().ExposeErrors() {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}

// BadRequest is the 400 shortcut used for presence checks.
func BadRequest(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: message})
}

// NotFound is the 404 shortcut.
func NotFound(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusNotFound, Message: message})
}
