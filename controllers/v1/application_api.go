package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/application"
	"nexora-hcm/lib/feedback"
	apimodels "nexora-hcm/models/api"
	applicationapimodels "nexora-hcm/models/api/application"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type applicationApiController struct {
	controllers.BaseAPIController
	handler         application.Provider
	feedbackHandler feedback.Provider
}

func InitApplicationApiRouters(app *fiber.App, handler application.Provider, feedbackHandler feedback.Provider) {
	controller := applicationApiController{
		handler:         handler,
		feedbackHandler: feedbackHandler,
	}
	app.Route("application", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("stage", controller.changeStage)
			idRoute.Get("feedback", controller.feedbackList)
		})
	})
}

// @Summary Список откликов
// @Tags Отклик
// @Description Список откликов, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id		query		int	false	"вакансия"
// @Param   candidate_id		query		int	false	"кандидат"
// @Param   stage		query		string	false	"этап"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ApplicationFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, errors.New("некорректные параметры запроса"))
	}
	list, err := c.handler.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка откликов")
	}
	return c.SendOK(ctx, list)
}

// @Summary Создание
// @Tags Отклик
// @Description Создание отклика кандидата на вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 201 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания отклика")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Получение по ИД
// @Tags Отклик
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Get(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения отклика")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Обновление
// @Tags Отклик
// @Description Частичное обновление заметок и этапа. Недопустимый этап игнорируется, событие не создается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationUpdate	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application/{id} [patch]
func (c *applicationApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.ApplicationUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка обновления отклика")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Отклик
// @Description Удаление вместе с отзывами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления отклика")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}

// @Summary Смена этапа
// @Tags Отклик
// @Description Перевод отклика на этап applied, screening, interview, offer, hired или rejected. Создает событие application.stageChanged
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.StageChangeRequest	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.StageChangeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application/{id}/stage [put]
func (c *applicationApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload applicationapimodels.StageChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	result, err := c.handler.ChangeStage(id, payload.Stage)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка смены этапа отклика")
	}
	return c.SendOK(ctx, result)
}

// @Summary Отзывы по отклику
// @Tags Отзыв
// @Description Отзывы по отклику, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/application/{id}/feedback [get]
func (c *applicationApiController) feedbackList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := c.feedbackHandler.ListByApplication(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка отзывов")
	}
	return c.SendOK(ctx, list)
}
