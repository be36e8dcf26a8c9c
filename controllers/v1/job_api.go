package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/job"
	apimodels "nexora-hcm/models/api"
	jobapimodels "nexora-hcm/models/api/job"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type jobApiController struct {
	controllers.BaseAPIController
	handler job.Provider
}

func InitJobApiRouters(app *fiber.App, handler job.Provider) {
	controller := jobApiController{handler: handler}
	app.Route("job", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список вакансий
// @Tags Вакансия
// @Description Список вакансий, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   open_only		query		bool	false	"только открытые"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/job [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, errors.New("некорректные параметры запроса"))
	}
	list, err := c.handler.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка вакансий")
	}
	return c.SendOK(ctx, list)
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии, новая вакансия открыта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 201 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/job [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания вакансии")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/job/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Get(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения вакансии")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Обновление
// @Tags Вакансия
// @Description Частичное обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobUpdate	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/job/{id} [patch]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload jobapimodels.JobUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка обновления вакансии")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Вакансия
// @Description Удаление. Вакансию с откликами удалить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/job/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления вакансии")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}
