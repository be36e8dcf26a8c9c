package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/users"
	apimodels "nexora-hcm/models/api"
	userapimodels "nexora-hcm/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
	handler users.Provider
}

func InitUserApiRouters(app *fiber.App, handler users.Provider) {
	controller := userApiController{handler: handler}
	app.Route("user", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список пользователей
// @Tags Пользователь
// @Description Список пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/user [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка пользователей")
	}
	return c.SendOK(ctx, list)
}

// @Summary Создание
// @Tags Пользователь
// @Description Создание пользователя. Почта уникальна без учета регистра
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.UserData	true	"request body"
// @Success 201 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/user [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания пользователя")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Получение по ИД
// @Tags Пользователь
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/user/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Get(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения пользователя")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Пользователь
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/user/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления пользователя")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}
