package controllers

import (
	"attachment-hub-backend/fiberlog"
	"attachment-hub-backend/middleware"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("request query parse failed")
		return errors.New("failed to read request parameters")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := strings.TrimSpace(ctx.Params(name))
	if value == "" {
		return "", errors.Errorf("parameter %s is required", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField(fiberlog.TagMethod, ctx.Method()).
		WithField(fiberlog.TagPath, ctx.Path())
	if requestID, ok := ctx.Locals(fiberlog.RequestID).(string); ok && requestID != "" {
		logger = logger.WithField(fiberlog.RequestID, requestID)
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError maps domain errors to statuses; anything else is logged and hidden behind msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("not found"))
	case errors.Is(err, models.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

// SendResult writes the (result, hMsg, err) triple returned by handlers.
func (c *BaseAPIController) SendResult(ctx *fiber.Ctx, data interface{}, hMsg string, err error, msg string) error {
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// UploadedFile is a multipart file read fully into memory.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (c *BaseAPIController) ReadFormFile(ctx *fiber.Ctx, field string) (*UploadedFile, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		return nil, errors.Errorf("file %s is required", field)
	}
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "uploaded file open failed")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "uploaded file read failed")
	}
	return &UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

// SendFile writes raw bytes; attachment forces a download instead of inline display.
func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, fileName, contentType string, data []byte, attachment bool) error {
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	if contentType != "" {
		ctx.Set(fiber.HeaderContentType, contentType)
	}
	if fileName != "" {
		ctx.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+fileName+`"`)
	}
	return ctx.Status(fiber.StatusOK).Send(data)
}
