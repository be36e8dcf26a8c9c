package apiv1

import (
	"io"
	"nexora-hcm/controllers"
	"nexora-hcm/lib/candidate"
	apimodels "nexora-hcm/models/api"
	candidateapimodels "nexora-hcm/models/api/candidate"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
	handler candidate.Provider
}

func InitCandidateApiRouters(app *fiber.App, handler candidate.Provider) {
	controller := candidateApiController{handler: handler}
	app.Route("candidate", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Post("resume", controller.uploadResume)
			idRoute.Get("resume", controller.downloadResume)
		})
	})
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов, новые первыми. Фильтр q ищет по имени и почте без учета регистра
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   q		query		string	false	"строка поиска"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, errors.New("некорректные параметры запроса"))
	}
	list, err := c.handler.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка кандидатов")
	}
	return c.SendOK(ctx, list)
}

// @Summary Создание
// @Tags Кандидат
// @Description Создание кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 201 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания кандидата")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Get(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения кандидата")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Обновление
// @Tags Кандидат
// @Description Частичное обновление: меняются только переданные поля, null в email и phone очищает значение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateUpdate	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate/{id} [patch]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload candidateapimodels.CandidateUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка обновления кандидата")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Кандидат
// @Description Удаление. Кандидата с откликами удалить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления кандидата")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}

// @Summary Загрузка резюме
// @Tags Кандидат
// @Description Загрузка файла резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Param   file formData file true "файл резюме"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate/{id}/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.SendBadRequest(ctx, errors.New("не передан файл резюме"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка чтения файла резюме")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка чтения файла резюме")
	}
	if err = c.handler.UploadResume(ctx.UserContext(), id, fileHeader.Filename, body); err != nil {
		return c.SendError(ctx, err, "Ошибка загрузки резюме")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}

// @Summary Скачивание резюме
// @Tags Кандидат
// @Description Скачивание файла резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/candidate/{id}/resume [get]
func (c *candidateApiController) downloadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	fileName, body, err := c.handler.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения резюме")
	}
	ctx.Attachment(fileName)
	return ctx.Status(fiber.StatusOK).Send(body)
}
