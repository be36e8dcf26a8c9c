package controllers

import (
	"nexora-hcm/fiberlog"
	apperrors "nexora-hcm/lib/utils/app-errors"
	apimodels "nexora-hcm/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	return c.GetUintParam(ctx, "id")
}

func (c *BaseAPIController) GetUintParam(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("некорректный идентификатор %s", name)
	}
	return uint(id), nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	requestID, _ := ctx.Locals(fiberlog.RequestID).(string)
	return log.
		WithField("request_id", requestID).
		WithField("path", ctx.Path())
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

// SendError текст ошибки без типа клиенту не отдается, вместо него defaultMsg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error, defaultMsg string) error {
	msg, known := apperrors.PublicMessage(err)
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(msg))
	case apperrors.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(msg))
	case apperrors.KindConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(msg))
	}
	if !known {
		c.GetLogger(ctx).WithError(err).Error(defaultMsg)
		msg = defaultMsg
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func (c *BaseAPIController) SendOK(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

func (c *BaseAPIController) SendCreated(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(data))
}
