package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/feedback"
	feedbackapimodels "nexora-hcm/models/api/feedback"

	"github.com/gofiber/fiber/v2"
)

type feedbackApiController struct {
	controllers.BaseAPIController
	handler feedback.Provider
}

func InitFeedbackApiRouters(app *fiber.App, handler feedback.Provider) {
	controller := feedbackApiController{handler: handler}
	app.Route("feedback", func(router fiber.Router) {
		router.Post("", controller.create)
	})
}

// @Summary Создание
// @Tags Отзыв
// @Description Отзыв по отклику. Тональность рассчитывается при сохранении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 feedbackapimodels.FeedbackData	true	"request body"
// @Success 201 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/feedback [post]
func (c *feedbackApiController) create(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка сохранения отзыва")
	}
	return c.SendCreated(ctx, rec)
}
